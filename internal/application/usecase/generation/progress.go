package generation

import (
	"context"

	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/pkg/apperror"
)

type GetPromptProgressUseCase struct {
	progress service.ProgressStore
}

func NewGetPromptProgressUseCase(progress service.ProgressStore) *GetPromptProgressUseCase {
	return &GetPromptProgressUseCase{progress: progress}
}

type GetPromptProgressOutput struct {
	Progress service.BatchProgress
	Found    bool
}

func (uc *GetPromptProgressUseCase) Execute(ctx context.Context, profileID string) (*GetPromptProgressOutput, error) {
	p, ok, err := uc.progress.GetProgress(ctx, profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to load prompt generation progress", err)
	}
	return &GetPromptProgressOutput{Progress: p, Found: ok}, nil
}
