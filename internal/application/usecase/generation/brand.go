package generation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

type AnalyzeBrandUseCase struct {
	profileRepo profile.Repository
	llm         service.LLMService
	publisher   event.Publisher
	logger      logger.Logger
}

func NewAnalyzeBrandUseCase(repo profile.Repository, llm service.LLMService, pub event.Publisher, log logger.Logger) *AnalyzeBrandUseCase {
	return &AnalyzeBrandUseCase{
		profileRepo: repo,
		llm:         llm,
		publisher:   pub,
		logger:      log,
	}
}

type AnalyzeBrandInput struct {
	ProfileID string
}

type AnalyzeBrandOutput struct {
	BrandAnalysis *profile.BrandAnalysis
}

func (uc *AnalyzeBrandUseCase) Execute(ctx context.Context, input AnalyzeBrandInput) (*AnalyzeBrandOutput, error) {
	ctx, span := tracer.Start(ctx, "AnalyzeBrand")
	defer span.End()

	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}

	raw, err := uc.llm.GenerateChatResponse(ctx, service.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildBrandPrompt(p),
		MaxTokens:    brandMaxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("brand analysis failed", err)
	}

	ba, err := parseBrandAnalysis(raw)
	if err != nil {
		return nil, apperror.NewUnavailable("brand analysis response was malformed", err)
	}

	if err := uc.profileRepo.Update(ctx, p.ID, profile.Update{BrandAnalysis: ba}); err != nil {
		return nil, apperror.NewInternal("failed to persist brand analysis", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventBrandAnalyzed,
		ProfileID: p.ID,
	}); err != nil {
		uc.logger.Warn("Failed to publish brand.analyzed event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	return &AnalyzeBrandOutput{BrandAnalysis: ba}, nil
}
