package profile

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger

	// now is swappable in tests so slug ids are deterministic.
	now func() time.Time
}

func NewCreateProfileUseCase(repo profile.Repository, pub event.Publisher, log logger.Logger) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
		now:         time.Now,
	}
}

type CreateProfileInput struct {
	FirstName   string
	LastName    string
	Email       *string
	LinkedInURL *string
	ActorID     string
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if first == "" || last == "" {
		return nil, apperror.NewInvalidInput("first name and last name are required", nil)
	}

	now := uc.now().UTC()

	p := &profile.Profile{
		ID:              buildProfileID(first, last, now),
		FirstName:       first,
		LastName:        last,
		Email:           input.Email,
		LinkedInURL:     input.LinkedInURL,
		ContentPillars:  []string{},
		LinkedInPrompts: []profile.PostPrompt{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile failed: %w", err)
	}

	payload := event.Payload{
		EventType: event.EventProfileCreated,
		ProfileID: p.ID,
	}
	if input.ActorID != "" {
		payload.Detail = map[string]any{"actor_id": input.ActorID}
	}
	if err := uc.publisher.PublishProfileEvent(ctx, payload); err != nil {
		uc.logger.Warn("Failed to publish profile.created event", zap.String("profile_id", p.ID), zap.Error(err))
	}

	return &CreateProfileOutput{Profile: p}, nil
}

// buildProfileID joins the normalized name parts with the creation
// timestamp, e.g. "jane-doe-1735689600". The id is immutable afterwards.
func buildProfileID(first, last string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", normalizeNamePart(first), normalizeNamePart(last), now.Unix())
}

func normalizeNamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return b.String()
}
