package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/mylance/content-engine/internal/application/usecase/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

type ProfileHandler struct {
	createUseCase *profileUC.CreateProfileUseCase
	listUseCase   *profileUC.ListProfilesUseCase
	getUseCase    *profileUC.GetProfileUseCase
	updateUseCase *profileUC.UpdateProfileUseCase
	logger        logger.Logger
}

func NewProfileHandler(
	createUC *profileUC.CreateProfileUseCase,
	listUC *profileUC.ListProfilesUseCase,
	getUC *profileUC.GetProfileUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		logger:        log,
	}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile create", err))
		return
	}

	input := profileUC.CreateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		LinkedInURL: req.LinkedInURL,
	}
	if ownerID, ok := GetOwnerIDFromGinContext(c); ok {
		input.ActorID = ownerID.String()
	}
	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileSummaryDTO, len(output.Profiles))
	for i, s := range output.Profiles {
		dtos[i] = ToProfileSummaryDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	input := profileUC.GetProfileInput{ProfileID: c.Param("id")}
	output, err := h.getUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		ProfileID: c.Param("id"),
		Update:    req.ToDomainUpdate(),
	}
	if ownerID, ok := GetOwnerIDFromGinContext(c); ok {
		input.ActorID = ownerID.String()
	}
	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// GetPrompts returns the stored raw prompt list plus a style-grouped view.
// Prompts with an unknown style label appear only in the raw list.
func (h *ProfileHandler) GetPrompts(c *gin.Context) {
	input := profileUC.GetProfileInput{ProfileID: c.Param("id")}
	output, err := h.getUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	grouped := output.Profile.PromptsByStyle()
	groupedDTOs := make(map[string][]PostPromptDTO, len(grouped))
	for style, prompts := range grouped {
		groupedDTOs[style] = ToPostPromptDTOs(prompts)
	}

	c.JSON(http.StatusOK, gin.H{
		"prompts":  ToPostPromptDTOs(output.Profile.LinkedInPrompts),
		"by_style": groupedDTOs,
	})
}
