package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdownFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, stripMarkdownFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripMarkdownFences("[{\"a\":1}]"))
	// Truncated response: opening fence only.
	assert.Equal(t, `[{"a":1}]`, stripMarkdownFences("```json\n[{\"a\":1}]"))
}

func TestParsePillars_ExactlyThree(t *testing.T) {
	raw := "1. \"Scaling ops teams without headcount\"\n2. \"The fractional COO playbook\"\n3. \"Hiring mistakes founders repeat\""
	pillars := parsePillars(raw)
	require.Len(t, pillars, 3)
	assert.Equal(t, "Scaling ops teams without headcount", pillars[0])
	assert.Equal(t, "The fractional COO playbook", pillars[1])
	assert.Equal(t, "Hiring mistakes founders repeat", pillars[2])
}

func TestParsePillars_PadsToThree(t *testing.T) {
	pillars := parsePillars("1. \"Only theme one\"\n2. \"Only theme two\"")
	require.Len(t, pillars, 3)
	assert.Equal(t, "Only theme one", pillars[0])
	assert.Equal(t, "Only theme two", pillars[1])
	assert.Equal(t, "", pillars[2])
}

func TestParsePillars_TruncatesToThree(t *testing.T) {
	raw := "1. \"One\"\n2. \"Two\"\n3. \"Three\"\n4. \"Four\"\n5. \"Five\""
	pillars := parsePillars(raw)
	require.Len(t, pillars, 3)
	assert.Equal(t, []string{"One", "Two", "Three"}, pillars)
}

func TestParsePillars_IgnoresUnquotedLines(t *testing.T) {
	raw := "Here are your pillars:\n1. \"Actual theme\"\nThanks for asking!"
	pillars := parsePillars(raw)
	require.Len(t, pillars, 3)
	assert.Equal(t, "Actual theme", pillars[0])
	assert.Equal(t, "", pillars[1])
	assert.Equal(t, "", pillars[2])
}

func TestParsePromptBatch_Valid(t *testing.T) {
	raw := `[
		{"prompt": "Write about a failed launch", "hook": "I shipped it anyway.", "type_of_post": "First-Person Anecdotes"},
		{"prompt": "Five hiring signals", "hook": "Most founders miss #3.", "type_of_post": "Listicles"}
	]`
	prompts, err := parsePromptBatch(raw)
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "First-Person Anecdotes", prompts[0].Style)
	assert.Equal(t, "I shipped it anyway.", prompts[0].Hook)
}

func TestParsePromptBatch_DropsIncompleteItems(t *testing.T) {
	raw := `[
		{"prompt": "Complete item", "hook": "A hook", "type_of_post": "Educational"},
		{"prompt": "Missing hook", "type_of_post": "Educational"},
		{"hook": "Missing prompt", "type_of_post": "Questions"}
	]`
	prompts, err := parsePromptBatch(raw)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Complete item", prompts[0].Prompt)
}

func TestParsePromptBatch_KeepsUnknownStyle(t *testing.T) {
	// Unknown labels stay in the raw list; filtering is a display concern.
	raw := `[{"prompt": "p", "hook": "h", "type_of_post": "Hot Takes"}]`
	prompts, err := parsePromptBatch(raw)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Hot Takes", prompts[0].Style)
}

func TestParsePromptBatch_RejectsNonArray(t *testing.T) {
	_, err := parsePromptBatch("Sure! Here are some prompts for you.")
	assert.Error(t, err)
}

func TestParsePromptBatch_StripsFences(t *testing.T) {
	raw := "```json\n[{\"prompt\": \"p\", \"hook\": \"h\", \"type_of_post\": \"Case Studies\"}]\n```"
	prompts, err := parsePromptBatch(raw)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
}

func TestParseBrandAnalysis(t *testing.T) {
	raw := `{
		"primary_strategy": "Operator-led growth",
		"secondary_strategy": "Community",
		"content_pillars": ["a", "b", "c"],
		"brand_voice": "Direct",
		"key_topics": ["ops", "hiring"]
	}`
	ba, err := parseBrandAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "Operator-led growth", ba.PrimaryStrategy)
	assert.Equal(t, []string{"a", "b", "c"}, ba.ContentPillars)

	_, err = parseBrandAnalysis(`{"brand_voice": "Direct"}`)
	assert.Error(t, err, "missing primary_strategy must fail")

	_, err = parseBrandAnalysis("not json")
	assert.Error(t, err)
}
