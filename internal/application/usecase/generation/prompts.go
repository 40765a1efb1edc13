package generation

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

const (
	// DefaultPromptCount is how many post prompts one generation run asks
	// for when the request does not say otherwise.
	DefaultPromptCount = 30

	// BatchSize keeps each model response within its token budget.
	BatchSize = 5

	defaultBatchPause = 2 * time.Second
)

type GeneratePromptsUseCase struct {
	profileRepo profile.Repository
	llm         service.LLMService
	progress    service.ProgressStore
	publisher   event.Publisher
	logger      logger.Logger

	// batchPause is the fixed delay between batches, there to stay under
	// the model endpoint's rate limit. Tests set it to zero.
	batchPause time.Duration
}

func NewGeneratePromptsUseCase(
	repo profile.Repository,
	llm service.LLMService,
	progress service.ProgressStore,
	pub event.Publisher,
	log logger.Logger,
) *GeneratePromptsUseCase {
	return &GeneratePromptsUseCase{
		profileRepo: repo,
		llm:         llm,
		progress:    progress,
		publisher:   pub,
		logger:      log,
		batchPause:  defaultBatchPause,
	}
}

type GeneratePromptsInput struct {
	ProfileID string
	Count     int
}

type GeneratePromptsOutput struct {
	Prompts        []profile.PostPrompt
	BatchesSkipped int
}

// Execute requests Count prompts in batches of BatchSize. A batch whose
// response fails to parse is skipped, not retried; its items are simply
// lost. The run fails only when every batch produced nothing. Progress is
// recorded after each batch so the UI can poll it.
func (uc *GeneratePromptsUseCase) Execute(ctx context.Context, input GeneratePromptsInput) (*GeneratePromptsOutput, error) {
	ctx, span := tracer.Start(ctx, "GeneratePrompts")
	defer span.End()

	count := input.Count
	if count <= 0 {
		count = DefaultPromptCount
	}

	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}

	accumulated := make([]profile.PostPrompt, 0, count)
	skipped := 0
	batches := 0

	uc.setProgress(ctx, p.ID, service.BatchProgress{Requested: count})

	for remaining := count; remaining > 0; remaining -= BatchSize {
		batchCount := BatchSize
		if remaining < BatchSize {
			batchCount = remaining
		}
		batches++

		raw, err := uc.llm.GenerateChatResponse(ctx, service.ChatRequest{
			SystemPrompt: systemPrompt,
			UserPrompt:   buildBatchPrompt(p, batchCount),
			MaxTokens:    batchMaxTokens,
			Temperature:  temperature,
		})
		if err != nil {
			span.RecordError(err)
			return nil, apperror.NewUnavailable("prompt generation failed", err)
		}

		batchPrompts, err := parsePromptBatch(raw)
		if err != nil {
			skipped++
			uc.logger.Warn("Skipping unparseable prompt batch",
				zap.String("profile_id", p.ID), zap.Int("batch", batches), zap.Error(err))
		} else {
			accumulated = append(accumulated, batchPrompts...)
		}

		uc.setProgress(ctx, p.ID, service.BatchProgress{
			Requested: count,
			Generated: len(accumulated),
			Batches:   batches,
		})

		if remaining > BatchSize && uc.batchPause > 0 {
			time.Sleep(uc.batchPause)
		}
	}

	uc.setProgress(ctx, p.ID, service.BatchProgress{
		Requested: count,
		Generated: len(accumulated),
		Batches:   batches,
		Done:      true,
	})

	if len(accumulated) == 0 {
		return nil, apperror.NewUnavailable("no prompts were produced across all batches", nil)
	}

	if err := uc.profileRepo.Update(ctx, p.ID, profile.Update{LinkedInPrompts: &accumulated}); err != nil {
		return nil, apperror.NewInternal("failed to persist generated prompts", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventPromptsGenerated,
		ProfileID: p.ID,
		Detail: map[string]any{
			"requested": count,
			"generated": len(accumulated),
			"skipped":   skipped,
		},
	}); err != nil {
		uc.logger.Warn("Failed to publish prompts.generated event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	uc.logger.Info("LinkedIn prompts generated",
		zap.String("profile_id", p.ID),
		zap.Int("requested", count),
		zap.Int("generated", len(accumulated)),
		zap.Int("batches_skipped", skipped))

	return &GeneratePromptsOutput{Prompts: accumulated, BatchesSkipped: skipped}, nil
}

func (uc *GeneratePromptsUseCase) setProgress(ctx context.Context, profileID string, p service.BatchProgress) {
	if err := uc.progress.SetProgress(ctx, profileID, p); err != nil {
		uc.logger.Warn("Failed to record batch progress", zap.String("profile_id", profileID), zap.Error(err))
	}
}
