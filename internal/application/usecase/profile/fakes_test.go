package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/domain/profile"
)

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
