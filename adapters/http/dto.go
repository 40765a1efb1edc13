package http

import (
	"time"

	"github.com/mylance/content-engine/internal/domain/activity"
	"github.com/mylance/content-engine/internal/domain/profile"
)

// Profile DTOs

type ProfileDTO struct {
	ID               string            `json:"id"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            *string           `json:"email"`
	LinkedInURL      *string           `json:"linkedin_url"`
	ICP              string            `json:"icp"`
	ICPPainPoints    string            `json:"icp_pain_points"`
	UniqueValue      string            `json:"unique_value"`
	ProofPoints      string            `json:"proof_points"`
	EnergizingTopics string            `json:"energizing_topics"`
	DecisionMakers   string            `json:"decision_makers"`
	ContentStrategy  string            `json:"content_strategy"`
	ContentPillars   []string          `json:"content_pillars"`
	LinkedInPrompts  []PostPromptDTO   `json:"linkedin_prompts"`
	BrandAnalysis    *BrandAnalysisDTO `json:"brand_analysis,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type ProfileSummaryDTO struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostPromptDTO struct {
	Prompt string `json:"prompt"`
	Hook   string `json:"hook"`
	Style  string `json:"style"`
}

type BrandAnalysisDTO struct {
	PrimaryStrategy   string   `json:"primary_strategy"`
	SecondaryStrategy string   `json:"secondary_strategy"`
	ContentPillars    []string `json:"content_pillars"`
	BrandVoice        string   `json:"brand_voice"`
	KeyTopics         []string `json:"key_topics"`
}

type CreateProfileRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       *string `json:"email"`
	LinkedInURL *string `json:"linkedin_url"`
}

// UpdateProfileRequest carries only the fields the client wants changed;
// absent keys stay untouched on the record.
type UpdateProfileRequest struct {
	Email            *string   `json:"email"`
	LinkedInURL      *string   `json:"linkedin_url"`
	ICP              *string   `json:"icp"`
	ICPPainPoints    *string   `json:"icp_pain_points"`
	UniqueValue      *string   `json:"unique_value"`
	ProofPoints      *string   `json:"proof_points"`
	EnergizingTopics *string   `json:"energizing_topics"`
	DecisionMakers   *string   `json:"decision_makers"`
	ContentPillars   *[]string `json:"content_pillars"`
}

func (req *UpdateProfileRequest) ToDomainUpdate() profile.Update {
	return profile.Update{
		Email:            req.Email,
		LinkedInURL:      req.LinkedInURL,
		ICP:              req.ICP,
		ICPPainPoints:    req.ICPPainPoints,
		UniqueValue:      req.UniqueValue,
		ProofPoints:      req.ProofPoints,
		EnergizingTopics: req.EnergizingTopics,
		DecisionMakers:   req.DecisionMakers,
		ContentPillars:   req.ContentPillars,
	}
}

type UpdateStrategyRequest struct {
	ContentStrategy string `json:"content_strategy" binding:"required"`
}

type ReviseStrategyRequest struct {
	Feedback string `json:"feedback"`
}

type GeneratePromptsRequest struct {
	Count int `json:"count"`
}

type ThoughtLeadershipRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

type ActivityEntryDTO struct {
	ID         string         `json:"id"`
	EventType  string         `json:"event_type"`
	ProfileID  string         `json:"profile_id"`
	Detail     map[string]any `json:"detail"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func ToActivityEntryDTO(e activity.Entry) ActivityEntryDTO {
	return ActivityEntryDTO{
		ID:         e.ID.String(),
		EventType:  e.EventType,
		ProfileID:  e.ProfileID,
		Detail:     e.Detail,
		OccurredAt: e.OccurredAt,
	}
}

func ToPostPromptDTOs(prompts []profile.PostPrompt) []PostPromptDTO {
	dtos := make([]PostPromptDTO, len(prompts))
	for i, p := range prompts {
		dtos[i] = PostPromptDTO(p)
	}
	return dtos
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		LinkedInURL:      p.LinkedInURL,
		ICP:              p.ICP,
		ICPPainPoints:    p.ICPPainPoints,
		UniqueValue:      p.UniqueValue,
		ProofPoints:      p.ProofPoints,
		EnergizingTopics: p.EnergizingTopics,
		DecisionMakers:   p.DecisionMakers,
		ContentStrategy:  p.ContentStrategy,
		ContentPillars:   p.ContentPillars,
		LinkedInPrompts:  ToPostPromptDTOs(p.LinkedInPrompts),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.BrandAnalysis != nil {
		ba := BrandAnalysisDTO(*p.BrandAnalysis)
		dto.BrandAnalysis = &ba
	}
	return dto
}

func ToProfileSummaryDTO(s profile.Summary) ProfileSummaryDTO {
	return ProfileSummaryDTO(s)
}
