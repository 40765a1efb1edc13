package settings

import (
	"context"
	"strings"

	"github.com/mylance/content-engine/internal/domain/settings"
	"github.com/mylance/content-engine/pkg/apperror"
)

// ThoughtLeadershipUseCase reads and writes the single global
// thought-leadership strategy string. It is a keyed setting, not a
// collection.
type ThoughtLeadershipUseCase struct {
	settingsRepo settings.Repository
}

func NewThoughtLeadershipUseCase(repo settings.Repository) *ThoughtLeadershipUseCase {
	return &ThoughtLeadershipUseCase{settingsRepo: repo}
}

func (uc *ThoughtLeadershipUseCase) Save(ctx context.Context, strategy string) error {
	if strings.TrimSpace(strategy) == "" {
		return apperror.NewInvalidInput("strategy must not be empty", nil)
	}
	if err := uc.settingsRepo.Set(ctx, settings.KeyThoughtLeadership, strategy); err != nil {
		return apperror.NewInternal("failed to save thought leadership strategy", err)
	}
	return nil
}

func (uc *ThoughtLeadershipUseCase) Get(ctx context.Context) (string, error) {
	strategy, err := uc.settingsRepo.Get(ctx, settings.KeyThoughtLeadership)
	if err != nil {
		return "", apperror.NewInternal("failed to load thought leadership strategy", err)
	}
	return strategy, nil
}
