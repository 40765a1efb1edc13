package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, pub event.Publisher, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
	}
}

type UpdateProfileInput struct {
	ProfileID string
	Update    profile.Update
	ActorID   string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// Execute applies a typed partial update: only fields set on the update
// struct are written, so saving marketing inputs never clobbers generated
// artifacts and vice versa. An incoming pillar list is coerced to exactly
// profile.PillarCount entries before it reaches storage.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	upd := input.Update
	if upd.ContentPillars != nil {
		normalized := profile.NormalizePillars(*upd.ContentPillars)
		upd.ContentPillars = &normalized
	}

	if err := uc.profileRepo.Update(ctx, input.ProfileID, upd); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to update profile", err)
	}

	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to reload profile after update", err)
	}

	payload := event.Payload{
		EventType: event.EventProfileUpdated,
		ProfileID: input.ProfileID,
	}
	if input.ActorID != "" {
		payload.Detail = map[string]any{"actor_id": input.ActorID}
	}
	if err := uc.publisher.PublishProfileEvent(ctx, payload); err != nil {
		uc.logger.Warn("Failed to publish profile.updated event", zap.String("profile_id", input.ProfileID), zap.Error(err))
	}

	return &UpdateProfileOutput{Profile: p}, nil
}
