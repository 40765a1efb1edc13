package generation

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/internal/domain/settings"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

var tracer = otel.Tracer("generation_usecase")

type GenerateStrategyUseCase struct {
	profileRepo  profile.Repository
	settingsRepo settings.Repository
	llm          service.LLMService
	publisher    event.Publisher
	logger       logger.Logger
}

func NewGenerateStrategyUseCase(
	repo profile.Repository,
	settingsRepo settings.Repository,
	llm service.LLMService,
	pub event.Publisher,
	log logger.Logger,
) *GenerateStrategyUseCase {
	return &GenerateStrategyUseCase{
		profileRepo:  repo,
		settingsRepo: settingsRepo,
		llm:          llm,
		publisher:    pub,
		logger:       log,
	}
}

type GenerateStrategyInput struct {
	ProfileID string
}

type GenerateStrategyOutput struct {
	ContentStrategy string
}

func (uc *GenerateStrategyUseCase) Execute(ctx context.Context, input GenerateStrategyInput) (*GenerateStrategyOutput, error) {
	ctx, span := tracer.Start(ctx, "GenerateStrategy")
	defer span.End()

	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}

	// The global thought-leadership strategy steers every profile's
	// generation when set. Absence is fine.
	thoughtLeadership, err := uc.settingsRepo.Get(ctx, settings.KeyThoughtLeadership)
	if err != nil {
		uc.logger.Warn("Failed to load thought leadership strategy, generating without it", zap.Error(err))
		thoughtLeadership = ""
	}

	raw, err := uc.llm.GenerateChatResponse(ctx, service.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildStrategyPrompt(p, thoughtLeadership),
		MaxTokens:    strategyMaxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("strategy generation failed", err)
	}

	strategy := raw
	if err := uc.profileRepo.Update(ctx, p.ID, profile.Update{ContentStrategy: &strategy}); err != nil {
		return nil, apperror.NewInternal("failed to persist generated strategy", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventStrategyGenerated,
		ProfileID: p.ID,
	}); err != nil {
		uc.logger.Warn("Failed to publish strategy.generated event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	uc.logger.Info("Content strategy generated", zap.String("profile_id", p.ID))
	return &GenerateStrategyOutput{ContentStrategy: strategy}, nil
}
