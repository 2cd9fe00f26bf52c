package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is returned when a provider answer cannot be parsed.
var ErrMalformedResponse = errors.New("malformed ai response")

// RefineOptions selects which refinement criteria are applied. A nil field
// counts as enabled.
type RefineOptions struct {
	Persona *bool
	Task    *bool
	Context *bool
	Format  *bool
}

func enabled(b *bool) bool {
	return b == nil || *b
}

func folderContext(folderPath string) string {
	if folderPath == "" {
		return ""
	}
	return fmt.Sprintf("\n<folder>%s</folder>", folderPath)
}

// GetTagSuggestionPrompt returns the system prompt for tag suggestions.
func GetTagSuggestionPrompt(folderPath string) string {
	return fmt.Sprintf(`You are an expert at organizing content. Analyze the user's prompt and suggest relevant tags.
<context>%s
</context>

<instructions>
1. Generate 3 to 5 descriptive tags
2. Detect the language of the prompt and respond ONLY with tags in that same language
3. The folder, when given, is where the prompt is filed; use it as a hint only
4. Respond ONLY with a valid JSON object with a "suggestedTags" key containing an array of strings
</instructions>`, folderContext(folderPath))
}

// GetTitleSuggestionPrompt returns the system prompt for title suggestions.
func GetTitleSuggestionPrompt(folderPath string) string {
	return fmt.Sprintf(`You are an expert at summarizing text into concise titles.
<context>%s
</context>

<instructions>
1. Generate a short, clear, relevant title of at most 10 words
2. Respond ONLY with the title text in the same language as the input
3. NEVER wrap the title in quotes or markdown
</instructions>`, folderContext(folderPath))
}

// GetRefinePrompt returns the system prompt for prompt refinement.
func GetRefinePrompt(opts RefineOptions) string {
	var b strings.Builder
	b.WriteString("You are a world-class prompt engineering expert. Refine the user-submitted prompt to be more effective for large language models.\n")
	b.WriteString("Apply these criteria:\n")
	if enabled(opts.Persona) {
		b.WriteString("- Persona: assign a highly relevant and authoritative role.\n")
	}
	if enabled(opts.Task) {
		b.WriteString("- Task: clarify and decompose the primary task into specific, actionable steps.\n")
	}
	if enabled(opts.Context) {
		b.WriteString("- Context: incorporate background information and constraints.\n")
	}
	if enabled(opts.Format) {
		b.WriteString("- Format: specify the desired output structure and style.\n")
	}
	b.WriteString(`
<instructions>
1. Generate ONLY the optimized prompt text
2. Detect the language of the prompt and respond in that same language
3. Do NOT include explanations or commentary
</instructions>`)
	return b.String()
}

// WrapInput marks user content as data rather than instructions.
func WrapInput(content string) string {
	return "<input>\n" + content + "\n</input>"
}

// ParseTagSuggestions extracts the suggestedTags array from a provider answer,
// tolerating a surrounding markdown code fence.
func ParseTagSuggestions(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload struct {
		SuggestedTags []string `json:"suggestedTags"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.SuggestedTags == nil {
		return nil, fmt.Errorf("%w: missing suggestedTags", ErrMalformedResponse)
	}

	tags := make([]string, 0, len(payload.SuggestedTags))
	for _, tag := range payload.SuggestedTags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// CleanTitle strips quotes and keeps the first line of a title answer.
func CleanTitle(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.Trim(strings.TrimSpace(text), `"'`)
}
