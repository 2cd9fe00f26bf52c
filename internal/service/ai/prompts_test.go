package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/service/ai"
)

func TestWrapInput(t *testing.T) {
	require.Equal(t, "<input>\ntest content\n</input>", ai.WrapInput("test content"))
}

func TestGetTagSuggestionPrompt_IncludesFolder(t *testing.T) {
	prompt := ai.GetTagSuggestionPrompt("Work/Drafts")
	require.Contains(t, prompt, "<folder>Work/Drafts</folder>")
	require.Contains(t, prompt, "suggestedTags")
}

func TestGetTagSuggestionPrompt_NoFolder(t *testing.T) {
	prompt := ai.GetTagSuggestionPrompt("")
	require.NotContains(t, prompt, "<folder>")
}

func TestGetTitleSuggestionPrompt(t *testing.T) {
	prompt := ai.GetTitleSuggestionPrompt("Work")
	require.Contains(t, prompt, "<folder>Work</folder>")
	require.Contains(t, prompt, "10 words")
}

func TestGetRefinePrompt_DefaultsToAllCriteria(t *testing.T) {
	prompt := ai.GetRefinePrompt(ai.RefineOptions{})
	require.Contains(t, prompt, "Persona:")
	require.Contains(t, prompt, "Task:")
	require.Contains(t, prompt, "Context:")
	require.Contains(t, prompt, "Format:")
}

func TestGetRefinePrompt_DisabledCriteria(t *testing.T) {
	off := false
	prompt := ai.GetRefinePrompt(ai.RefineOptions{Persona: &off, Format: &off})
	require.NotContains(t, prompt, "Persona:")
	require.NotContains(t, prompt, "Format:")
	require.Contains(t, prompt, "Task:")
}

func TestParseTagSuggestions(t *testing.T) {
	tags, err := ai.ParseTagSuggestions(`{"suggestedTags": ["writing", " summary ", ""]}`)
	require.NoError(t, err)
	require.Equal(t, []string{"writing", "summary"}, tags)
}

func TestParseTagSuggestions_CodeFence(t *testing.T) {
	tags, err := ai.ParseTagSuggestions("```json\n{\"suggestedTags\": [\"go\"]}\n```")
	require.NoError(t, err)
	require.Equal(t, []string{"go"}, tags)
}

func TestParseTagSuggestions_Malformed(t *testing.T) {
	_, err := ai.ParseTagSuggestions("not json")
	require.ErrorIs(t, err, ai.ErrMalformedResponse)

	_, err = ai.ParseTagSuggestions(`{"tags": ["go"]}`)
	require.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestCleanTitle(t *testing.T) {
	require.Equal(t, "Summarize a document", ai.CleanTitle("  \"Summarize a document\"\nextra"))
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o-mini"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "k"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "deepseek-chat"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "gemini", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestNewProvider_Names(t *testing.T) {
	cases := map[string]ai.Config{
		ai.ProviderOpenAI:     {Provider: ai.ProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"},
		ai.ProviderAnthropic:  {Provider: ai.ProviderAnthropic, APIKey: "k", Model: "claude-3-5-haiku-latest"},
		ai.ProviderCompatible: {Provider: ai.ProviderCompatible, APIKey: "k", Model: "deepseek-chat", BaseURL: "https://api.deepseek.com"},
	}
	for name, cfg := range cases {
		p, err := ai.NewProvider(cfg)
		require.NoError(t, err)
		require.Equal(t, name, p.Name())
	}
}
