package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	generationUC "github.com/mylance/content-engine/internal/application/usecase/generation"
	profileUC "github.com/mylance/content-engine/internal/application/usecase/profile"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

type GenerationHandler struct {
	strategyUseCase *generationUC.GenerateStrategyUseCase
	pillarsUseCase  *generationUC.GeneratePillarsUseCase
	promptsUseCase  *generationUC.GeneratePromptsUseCase
	brandUseCase    *generationUC.AnalyzeBrandUseCase
	reviseUseCase   *generationUC.ReviseStrategyUseCase
	undoUseCase     *generationUC.UndoStrategyUseCase
	progressUseCase *generationUC.GetPromptProgressUseCase
	updateUseCase   *profileUC.UpdateProfileUseCase
	logger          logger.Logger
}

func NewGenerationHandler(
	strategyUC *generationUC.GenerateStrategyUseCase,
	pillarsUC *generationUC.GeneratePillarsUseCase,
	promptsUC *generationUC.GeneratePromptsUseCase,
	brandUC *generationUC.AnalyzeBrandUseCase,
	reviseUC *generationUC.ReviseStrategyUseCase,
	undoUC *generationUC.UndoStrategyUseCase,
	progressUC *generationUC.GetPromptProgressUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	log logger.Logger,
) *GenerationHandler {
	return &GenerationHandler{
		strategyUseCase: strategyUC,
		pillarsUseCase:  pillarsUC,
		promptsUseCase:  promptsUC,
		brandUseCase:    brandUC,
		reviseUseCase:   reviseUC,
		undoUseCase:     undoUC,
		progressUseCase: progressUC,
		updateUseCase:   updateUC,
		logger:          log,
	}
}

func (h *GenerationHandler) GenerateStrategy(c *gin.Context) {
	output, err := h.strategyUseCase.Execute(c.Request.Context(), generationUC.GenerateStrategyInput{
		ProfileID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_strategy": output.ContentStrategy})
}

func (h *GenerationHandler) GeneratePillars(c *gin.Context) {
	output, err := h.pillarsUseCase.Execute(c.Request.Context(), generationUC.GeneratePillarsInput{
		ProfileID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_pillars": output.ContentPillars})
}

func (h *GenerationHandler) GeneratePrompts(c *gin.Context) {
	// Body is optional; an empty body means the default count.
	var req GeneratePromptsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("invalid JSON body for prompt generation", err))
			return
		}
	}

	output, err := h.promptsUseCase.Execute(c.Request.Context(), generationUC.GeneratePromptsInput{
		ProfileID: c.Param("id"),
		Count:     req.Count,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prompts":         ToPostPromptDTOs(output.Prompts),
		"batches_skipped": output.BatchesSkipped,
	})
}

func (h *GenerationHandler) GetPromptProgress(c *gin.Context) {
	output, err := h.progressUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if !output.Found {
		c.JSON(http.StatusOK, gin.H{"requested": 0, "generated": 0, "batches": 0, "done": false})
		return
	}

	c.JSON(http.StatusOK, output.Progress)
}

func (h *GenerationHandler) AnalyzeBrand(c *gin.Context) {
	output, err := h.brandUseCase.Execute(c.Request.Context(), generationUC.AnalyzeBrandInput{
		ProfileID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	ba := BrandAnalysisDTO(*output.BrandAnalysis)
	c.JSON(http.StatusOK, ba)
}

// UpdateStrategy saves a manually edited strategy verbatim, bypassing the
// model.
func (h *GenerationHandler) UpdateStrategy(c *gin.Context) {
	var req UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for strategy update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		ProfileID: c.Param("id"),
		Update:    profile.Update{ContentStrategy: &req.ContentStrategy},
	}
	if ownerID, ok := GetOwnerIDFromGinContext(c); ok {
		input.ActorID = ownerID.String()
	}
	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_strategy": output.Profile.ContentStrategy})
}

func (h *GenerationHandler) ReviseStrategy(c *gin.Context) {
	var req ReviseStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for strategy revision", err))
		return
	}

	output, err := h.reviseUseCase.Execute(c.Request.Context(), generationUC.ReviseStrategyInput{
		ProfileID: c.Param("id"),
		Feedback:  req.Feedback,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_strategy": output.ContentStrategy})
}

func (h *GenerationHandler) UndoStrategy(c *gin.Context) {
	output, err := h.undoUseCase.Execute(c.Request.Context(), generationUC.UndoStrategyInput{
		ProfileID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_strategy": output.ContentStrategy})
}
