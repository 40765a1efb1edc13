package service

import "context"

// SnapshotStore holds the single previous version of a generated artifact,
// keyed by profile and artifact name. Put overwrites the slot; Get does not
// clear it, so consecutive undos re-apply the same value. Exactly one level
// of history is retained.
type SnapshotStore interface {
	Put(ctx context.Context, profileID, artifact, value string) error
	Get(ctx context.Context, profileID, artifact string) (value string, ok bool, err error)
}

// BatchProgress is the state of a running (or finished) batched prompt
// generation, polled by the UI between batches.
type BatchProgress struct {
	Requested int  `json:"requested"`
	Generated int  `json:"generated"`
	Batches   int  `json:"batches"`
	Done      bool `json:"done"`
}

type ProgressStore interface {
	SetProgress(ctx context.Context, profileID string, p BatchProgress) error
	GetProgress(ctx context.Context, profileID string) (BatchProgress, bool, error)
}
