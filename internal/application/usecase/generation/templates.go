package generation

import (
	"fmt"
	"strings"

	"github.com/mylance/content-engine/internal/domain/profile"
)

// Sampling and token budgets per operation. Temperature is fixed across
// every call.
const (
	temperature = 0.7

	strategyMaxTokens = 1000
	pillarsMaxTokens  = 300
	batchMaxTokens    = 1500
	brandMaxTokens    = 1000
	feedbackMaxTokens = 1000
)

const systemPrompt = "You are an expert LinkedIn content strategist helping consultants build their personal brand."

func buildStrategyPrompt(p *profile.Profile, thoughtLeadership string) string {
	var b strings.Builder
	b.WriteString("Create a content strategy for a LinkedIn profile with the following information:\n")
	fmt.Fprintf(&b, "Ideal Customer: %s\n", p.ICP)
	fmt.Fprintf(&b, "Pain Points: %s\n", p.ICPPainPoints)
	fmt.Fprintf(&b, "Unique Value: %s\n", p.UniqueValue)
	fmt.Fprintf(&b, "Proof Points: %s\n", p.ProofPoints)
	fmt.Fprintf(&b, "Topics: %s\n", p.EnergizingTopics)
	fmt.Fprintf(&b, "Decision Makers: %s\n", p.DecisionMakers)
	if thoughtLeadership != "" {
		fmt.Fprintf(&b, "\nAlign the strategy with this overall thought leadership direction:\n%s\n", thoughtLeadership)
	}
	return b.String()
}

func buildPillarsPrompt(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("Based on this content strategy, define exactly 3 content pillars.\n\n")
	fmt.Fprintf(&b, "Content strategy:\n%s\n\n", p.ContentStrategy)
	b.WriteString(`Return exactly 3 numbered lines, each containing one sentence-length theme in double quotes, for example:
1. "How fractional executives de-risk early-stage hiring"
2. "..."
3. "..."
Do not add commentary before or after the list.`)
	return b.String()
}

// buildBatchPrompt requests one batch of post prompts. count is the batch
// size (the remaining count for the final, possibly smaller batch).
func buildBatchPrompt(p *profile.Profile, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d LinkedIn post prompts based on this content strategy:\n%s\n\n", count, p.ContentStrategy)
	if len(p.ContentPillars) > 0 {
		fmt.Fprintf(&b, "Content pillars: %s\n\n", strings.Join(p.ContentPillars, "; "))
	}
	fmt.Fprintf(&b, `Each prompt must use one of these post styles: %s.

Return ONLY a valid JSON array in this exact format (no markdown, no commentary):
[
  {
    "prompt": "main post content idea",
    "hook": "attention-grabbing opening line",
    "type_of_post": "one of the six styles"
  }
]`, strings.Join(profile.Styles, ", "))
	return b.String()
}

func buildBrandPrompt(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("Analyze this LinkedIn profile's marketing inputs and derive a brand strategy.\n")
	fmt.Fprintf(&b, "Ideal Customer: %s\n", p.ICP)
	fmt.Fprintf(&b, "Pain Points: %s\n", p.ICPPainPoints)
	fmt.Fprintf(&b, "Unique Value: %s\n", p.UniqueValue)
	fmt.Fprintf(&b, "Proof Points: %s\n", p.ProofPoints)
	fmt.Fprintf(&b, "Topics: %s\n", p.EnergizingTopics)
	fmt.Fprintf(&b, "Decision Makers: %s\n\n", p.DecisionMakers)
	b.WriteString(`Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "primary_strategy": "...",
  "secondary_strategy": "...",
  "content_pillars": ["...", "...", "..."],
  "brand_voice": "...",
  "key_topics": ["...", "..."]
}`)
	return b.String()
}

func buildFeedbackPrompt(current, feedback string) string {
	var b strings.Builder
	b.WriteString("Revise the following LinkedIn content strategy according to the user's feedback.\n\n")
	fmt.Fprintf(&b, "--- Current strategy ---\n%s\n\n", current)
	fmt.Fprintf(&b, "--- Feedback ---\n%s\n\n", feedback)
	b.WriteString("Return the full revised strategy only, without commentary.")
	return b.String()
}
