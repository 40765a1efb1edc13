package settings

import "context"

// KeyThoughtLeadership is the settings row holding the single global
// thought-leadership strategy string.
const KeyThoughtLeadership = "thought_leadership_strategy"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
