package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mylance/content-engine/internal/domain/profile"
)

// fenceRe matches a fenced markdown block with an optional language tag.
// Models regularly wrap JSON answers in ``` fences even when told not to.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3}|~{3})[^\\n]*\\n(.*?)(?:`{3}|~{3})\\s*$")

var openFenceRe = regexp.MustCompile("^(?:`{3}|~{3})[^\\n]*\\n")

func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Truncated response with only an opening fence: strip the fence line.
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}
	return s
}

var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// parsePillars extracts the quoted theme from each line of the model
// response and coerces the result to exactly profile.PillarCount entries.
func parsePillars(raw string) []string {
	pillars := make([]string, 0, profile.PillarCount)
	for _, line := range strings.Split(stripMarkdownFences(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := quotedRe.FindStringSubmatch(line); m != nil {
			pillars = append(pillars, m[1])
		}
	}
	return profile.NormalizePillars(pillars)
}

// batchItem is the wire shape the model is asked for. The stored record uses
// "style"; "type_of_post" exists only on the model interface.
type batchItem struct {
	Prompt     string `json:"prompt"`
	Hook       string `json:"hook"`
	TypeOfPost string `json:"type_of_post"`
}

// parsePromptBatch parses one batch response into post prompts. Items
// missing any of the three fields are dropped; a response that is not a JSON
// array fails the whole batch. Style labels are stored as-is, even unknown
// ones; filtering happens at display time.
func parsePromptBatch(raw string) ([]profile.PostPrompt, error) {
	var items []batchItem
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &items); err != nil {
		return nil, fmt.Errorf("batch response is not a JSON array: %w", err)
	}

	prompts := make([]profile.PostPrompt, 0, len(items))
	for _, it := range items {
		if it.Prompt == "" || it.Hook == "" || it.TypeOfPost == "" {
			continue
		}
		prompts = append(prompts, profile.PostPrompt{
			Prompt: it.Prompt,
			Hook:   it.Hook,
			Style:  it.TypeOfPost,
		})
	}
	return prompts, nil
}

func parseBrandAnalysis(raw string) (*profile.BrandAnalysis, error) {
	var ba profile.BrandAnalysis
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &ba); err != nil {
		return nil, fmt.Errorf("brand analysis response is not the expected JSON object: %w", err)
	}
	if ba.PrimaryStrategy == "" {
		return nil, fmt.Errorf("brand analysis response is missing primary_strategy")
	}
	return &ba, nil
}
