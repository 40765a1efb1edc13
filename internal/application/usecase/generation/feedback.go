package generation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

// ArtifactStrategy names the undo slot for the content strategy. The slot is
// per profile and holds exactly one previous version.
const ArtifactStrategy = "content_strategy"

type ReviseStrategyUseCase struct {
	profileRepo profile.Repository
	llm         service.LLMService
	snapshots   service.SnapshotStore
	publisher   event.Publisher
	logger      logger.Logger
}

func NewReviseStrategyUseCase(
	repo profile.Repository,
	llm service.LLMService,
	snapshots service.SnapshotStore,
	pub event.Publisher,
	log logger.Logger,
) *ReviseStrategyUseCase {
	return &ReviseStrategyUseCase{
		profileRepo: repo,
		llm:         llm,
		snapshots:   snapshots,
		publisher:   pub,
		logger:      log,
	}
}

type ReviseStrategyInput struct {
	ProfileID string
	Feedback  string
}

type ReviseStrategyOutput struct {
	ContentStrategy string
}

// Execute snapshots the current strategy into the single undo slot (replacing
// whatever was there), asks the model for a revision based on the feedback,
// and persists the result.
func (uc *ReviseStrategyUseCase) Execute(ctx context.Context, input ReviseStrategyInput) (*ReviseStrategyOutput, error) {
	ctx, span := tracer.Start(ctx, "ReviseStrategy")
	defer span.End()

	if strings.TrimSpace(input.Feedback) == "" {
		return nil, apperror.NewInvalidInput("feedback must not be empty", nil)
	}

	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}

	if err := uc.snapshots.Put(ctx, p.ID, ArtifactStrategy, p.ContentStrategy); err != nil {
		return nil, apperror.NewInternal("failed to snapshot current strategy", err)
	}

	raw, err := uc.llm.GenerateChatResponse(ctx, service.ChatRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildFeedbackPrompt(p.ContentStrategy, input.Feedback),
		MaxTokens:    feedbackMaxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnavailable("strategy revision failed", err)
	}

	revised := raw
	if err := uc.profileRepo.Update(ctx, p.ID, profile.Update{ContentStrategy: &revised}); err != nil {
		return nil, apperror.NewInternal("failed to persist revised strategy", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventStrategyRevised,
		ProfileID: p.ID,
	}); err != nil {
		uc.logger.Warn("Failed to publish strategy.revised event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	return &ReviseStrategyOutput{ContentStrategy: revised}, nil
}

type UndoStrategyUseCase struct {
	profileRepo profile.Repository
	snapshots   service.SnapshotStore
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUndoStrategyUseCase(repo profile.Repository, snapshots service.SnapshotStore, pub event.Publisher, log logger.Logger) *UndoStrategyUseCase {
	return &UndoStrategyUseCase{
		profileRepo: repo,
		snapshots:   snapshots,
		publisher:   pub,
		logger:      log,
	}
}

type UndoStrategyInput struct {
	ProfileID string
}

type UndoStrategyOutput struct {
	ContentStrategy string
}

// Execute re-saves the retained snapshot. The slot is not cleared, so a
// second consecutive undo re-applies the same value. There is no deeper
// history to reach.
func (uc *UndoStrategyUseCase) Execute(ctx context.Context, input UndoStrategyInput) (*UndoStrategyOutput, error) {
	snapshot, ok, err := uc.snapshots.Get(ctx, input.ProfileID, ArtifactStrategy)
	if err != nil {
		return nil, apperror.NewInternal("failed to load strategy snapshot", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("strategy snapshot", input.ProfileID)
	}

	if err := uc.profileRepo.Update(ctx, input.ProfileID, profile.Update{ContentStrategy: &snapshot}); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to restore previous strategy", err)
	}

	if err := uc.publisher.PublishGenerationEvent(ctx, event.Payload{
		EventType: event.EventStrategyRestored,
		ProfileID: input.ProfileID,
	}); err != nil {
		uc.logger.Warn("Failed to publish strategy.restored event", zap.String("profile_id", input.ProfileID), zap.Error(err))
	}

	return &UndoStrategyOutput{ContentStrategy: snapshot}, nil
}
