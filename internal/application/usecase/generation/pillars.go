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

type GeneratePillarsUseCase struct {
	profileRepo profile.Repository
	llm         service.LLMService
	publisher   event.Publisher
	logger      logger.Logger
}

func NewGeneratePillarsUseCase(repo profile.Repository, llm service.LLMService, pub event.Publisher, log logger.Logger) *GeneratePillarsUseCase {
	return &GeneratePillarsUseCase{
		profileRepo: repo,
		llm:         llm,
		publisher:   pub,
		logger:      log,
	}
}

type GeneratePillarsInput struct {
	ProfileID string
}

type GeneratePillarsOutput struct {
	ContentPillars []string
}

// Execute stores exactly profile.PillarCount pillars regardless of what the
// model returns: fewer quoted lines are padded with "", extras are discarded.
func (uc *GeneratePillarsUseCase) Execute(ctx context.Context, input GeneratePillarsInput) (*GeneratePillarsOutput, error) {
	ctx, span := tracer.Start(ctx, "GeneratePillars")
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
		UserPrompt:   buildPillarsPrompt(p),
		MaxTokens:    pillarsMaxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("pillar generation failed", err)
	}

	pillars := parsePillars(raw)
	if err := uc.profileRepo.Update(ctx, p.ID, profile.Update{ContentPillars: &pillars}); err != nil {
		return nil, apperror.NewInternal("failed to persist content pillars", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventPillarsGenerated,
		ProfileID: p.ID,
	}); err != nil {
		uc.logger.Warn("Failed to publish pillars.generated event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	return &GeneratePillarsOutput{ContentPillars: pillars}, nil
}
