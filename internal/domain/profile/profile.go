package profile

import (
	"context"
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// The six post styles a generated prompt may carry. Anything else is kept in
// the stored raw list but excluded from style-grouped views.
const (
	StyleFirstPersonAnecdotes = "First-Person Anecdotes"
	StyleListicles            = "Listicles"
	StyleEducational          = "Educational"
	StyleThoughtLeadership    = "Thought Leadership"
	StyleCaseStudies          = "Case Studies"
	StyleQuestions            = "Questions"
)

var Styles = []string{
	StyleFirstPersonAnecdotes,
	StyleListicles,
	StyleEducational,
	StyleThoughtLeadership,
	StyleCaseStudies,
	StyleQuestions,
}

func IsValidStyle(s string) bool {
	for _, v := range Styles {
		if v == s {
			return true
		}
	}
	return false
}

// PostPrompt is one generated LinkedIn writing prompt.
type PostPrompt struct {
	Prompt string `json:"prompt"`
	Hook   string `json:"hook"`
	Style  string `json:"style"`
}

// BrandAnalysis is the structured strategy bundle produced by the
// analyze-brand operation.
type BrandAnalysis struct {
	PrimaryStrategy   string   `json:"primary_strategy"`
	SecondaryStrategy string   `json:"secondary_strategy"`
	ContentPillars    []string `json:"content_pillars"`
	BrandVoice        string   `json:"brand_voice"`
	KeyTopics         []string `json:"key_topics"`
}

// Profile is the persisted record of one user's marketing inputs and
// generated content artifacts. ID is a slug assigned at creation and is
// immutable afterwards.
type Profile struct {
	ID               string         `json:"id"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            *string        `json:"email"`
	LinkedInURL      *string        `json:"linkedin_url"`
	ICP              string         `json:"icp"`
	ICPPainPoints    string         `json:"icp_pain_points"`
	UniqueValue      string         `json:"unique_value"`
	ProofPoints      string         `json:"proof_points"`
	EnergizingTopics string         `json:"energizing_topics"`
	DecisionMakers   string         `json:"decision_makers"`
	ContentStrategy  string         `json:"content_strategy"`
	ContentPillars   []string       `json:"content_pillars"`
	LinkedInPrompts  []PostPrompt   `json:"linkedin_prompts"`
	BrandAnalysis    *BrandAnalysis `json:"brand_analysis"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// PillarCount is the fixed size of the stored content-pillar list. Every
// write path coerces the list to this length.
const PillarCount = 3

// NormalizePillars pads a short pillar list with empty strings and truncates
// a long one so the result has exactly PillarCount entries.
func NormalizePillars(pillars []string) []string {
	out := make([]string, 0, PillarCount)
	out = append(out, pillars...)
	if len(out) > PillarCount {
		out = out[:PillarCount]
	}
	for len(out) < PillarCount {
		out = append(out, "")
	}
	return out
}

// PromptsByStyle groups stored prompts by their style label. Records with a
// label outside the six known styles are dropped from the grouping; the raw
// list on the profile is left untouched.
func (p *Profile) PromptsByStyle() map[string][]PostPrompt {
	grouped := make(map[string][]PostPrompt)
	for _, pr := range p.LinkedInPrompts {
		if !IsValidStyle(pr.Style) {
			continue
		}
		grouped[pr.Style] = append(grouped[pr.Style], pr)
	}
	return grouped
}

// Update enumerates the fields a partial update may touch. Nil pointers mean
// "leave as is"; a last-writer-wins whole-record overwrite is deliberately
// not offered.
type Update struct {
	Email            *string
	LinkedInURL      *string
	ICP              *string
	ICPPainPoints    *string
	UniqueValue      *string
	ProofPoints      *string
	EnergizingTopics *string
	DecisionMakers   *string
	ContentStrategy  *string
	ContentPillars   *[]string
	LinkedInPrompts  *[]PostPrompt
	BrandAnalysis    *BrandAnalysis
}

// IsEmpty reports whether the update would touch nothing.
func (u Update) IsEmpty() bool {
	return u.Email == nil && u.LinkedInURL == nil && u.ICP == nil &&
		u.ICPPainPoints == nil && u.UniqueValue == nil && u.ProofPoints == nil &&
		u.EnergizingTopics == nil && u.DecisionMakers == nil &&
		u.ContentStrategy == nil && u.ContentPillars == nil &&
		u.LinkedInPrompts == nil && u.BrandAnalysis == nil
}

// Summary is the list-view projection of a profile.
type Summary struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, id string, upd Update) error
}
