package generation

import (
	"context"
	"errors"
	"sync"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/application/service"
	"github.com/mylance/content-engine/internal/domain/profile"
)

// fakeProfileRepo is an in-memory profile.Repository honoring the partial
// update contract: only non-nil fields of the update struct are written.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*profile.Profile
	saveErr  error
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*profile.Profile)}
	for _, p := range profiles {
		cp := *p
		r.profiles[p.ID] = &cp
	}
	return r
}

func (r *fakeProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.ID]; exists {
		return errors.New("duplicate id")
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]profile.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summaries := make([]profile.Summary, 0, len(r.profiles))
	for _, p := range r.profiles {
		summaries = append(summaries, profile.Summary{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return summaries, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, id string, upd profile.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return profile.ErrProfileNotFound
	}
	if upd.Email != nil {
		p.Email = upd.Email
	}
	if upd.LinkedInURL != nil {
		p.LinkedInURL = upd.LinkedInURL
	}
	if upd.ICP != nil {
		p.ICP = *upd.ICP
	}
	if upd.ICPPainPoints != nil {
		p.ICPPainPoints = *upd.ICPPainPoints
	}
	if upd.UniqueValue != nil {
		p.UniqueValue = *upd.UniqueValue
	}
	if upd.ProofPoints != nil {
		p.ProofPoints = *upd.ProofPoints
	}
	if upd.EnergizingTopics != nil {
		p.EnergizingTopics = *upd.EnergizingTopics
	}
	if upd.DecisionMakers != nil {
		p.DecisionMakers = *upd.DecisionMakers
	}
	if upd.ContentStrategy != nil {
		p.ContentStrategy = *upd.ContentStrategy
	}
	if upd.ContentPillars != nil {
		p.ContentPillars = append([]string(nil), (*upd.ContentPillars)...)
	}
	if upd.LinkedInPrompts != nil {
		p.LinkedInPrompts = append([]profile.PostPrompt(nil), (*upd.LinkedInPrompts)...)
	}
	if upd.BrandAnalysis != nil {
		ba := *upd.BrandAnalysis
		p.BrandAnalysis = &ba
	}
	return nil
}

// fakeLLM replays scripted responses in order. A response may instead be an
// error to simulate an unreachable model endpoint.
type fakeLLM struct {
	mu        sync.Mutex
	responses []any // string or error
	requests  []service.ChatRequest
}

func (f *fakeLLM) GenerateChatResponse(ctx context.Context, req service.ChatRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return "", errors.New("fakeLLM: no scripted response left")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

type fakeSnapshotStore struct {
	mu    sync.Mutex
	slots map[string]string
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{slots: make(map[string]string)}
}

func (s *fakeSnapshotStore) Put(ctx context.Context, profileID, artifact, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[profileID+"/"+artifact] = value
	return nil
}

func (s *fakeSnapshotStore) Get(ctx context.Context, profileID, artifact string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[profileID+"/"+artifact]
	return v, ok, nil
}

type fakeProgressStore struct {
	mu      sync.Mutex
	history []service.BatchProgress
}

func (s *fakeProgressStore) SetProgress(ctx context.Context, profileID string, p service.BatchProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, p)
	return nil
}

func (s *fakeProgressStore) GetProgress(ctx context.Context, profileID string) (service.BatchProgress, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return service.BatchProgress{}, false, nil
	}
	return s.history[len(s.history)-1], true, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.Payload
}

func (p *fakePublisher) PublishProfileEvent(ctx context.Context, payload event.Payload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

func (p *fakePublisher) PublishGenerationEvent(ctx context.Context, payload event.Payload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

type fakeSettingsRepo struct {
	values map[string]string
}

func (r *fakeSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeSettingsRepo) Set(ctx context.Context, key, value string) error {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[key] = value
	return nil
}
