package service

import (
	"context"
	"fmt"
	"strings"

	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/service/ai"
)

// SuggestionService asks the configured AI provider for tags, titles and
// refined prompts. It reads folder paths for context and never writes.
type SuggestionService interface {
	SuggestTags(ctx context.Context, ownerID int64, content string, folderID *int64) ([]string, error)
	SuggestTitle(ctx context.Context, ownerID int64, content string, folderID *int64) (string, error)
	Refine(ctx context.Context, content string, opts RefineOptions) (string, error)
}

// RefineOptions selects refinement criteria; nil means enabled.
type RefineOptions struct {
	Persona   *bool
	Task      *bool
	Context   *bool
	Format    *bool
	MaxTokens int
}

const maxSuggestedTags = 5

type suggestionService struct {
	provider ai.Provider
	subtree  SubtreeService
}

// NewSuggestionService builds the service. A nil provider makes every call
// fail with ErrAIUnavailable.
func NewSuggestionService(provider ai.Provider, subtree SubtreeService) SuggestionService {
	return &suggestionService{provider: provider, subtree: subtree}
}

func (s *suggestionService) SuggestTags(ctx context.Context, ownerID int64, content string, folderID *int64) ([]string, error) {
	folderPath, err := s.prepare(ctx, ownerID, content, folderID)
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, "suggest-tags", ai.Request{
		System:  ai.GetTagSuggestionPrompt(folderPath),
		Content: ai.WrapInput(content),
		JSON:    true,
	})
	if err != nil {
		return nil, err
	}
	tags, err := ai.ParseTagSuggestions(text)
	if err != nil {
		return nil, fmt.Errorf("suggest tags: %w", err)
	}
	tags = normalizeTags(tags)
	if len(tags) > maxSuggestedTags {
		tags = tags[:maxSuggestedTags]
	}
	return tags, nil
}

func (s *suggestionService) SuggestTitle(ctx context.Context, ownerID int64, content string, folderID *int64) (string, error) {
	folderPath, err := s.prepare(ctx, ownerID, content, folderID)
	if err != nil {
		return "", err
	}

	text, err := s.complete(ctx, "suggest-title", ai.Request{
		System:  ai.GetTitleSuggestionPrompt(folderPath),
		Content: ai.WrapInput(content),
	})
	if err != nil {
		return "", err
	}
	return ai.CleanTitle(text), nil
}

func (s *suggestionService) Refine(ctx context.Context, content string, opts RefineOptions) (string, error) {
	if s.provider == nil {
		return "", ErrAIUnavailable
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: content is required", ErrInvalid)
	}

	text, err := s.complete(ctx, "refine", ai.Request{
		System: ai.GetRefinePrompt(ai.RefineOptions{
			Persona: opts.Persona,
			Task:    opts.Task,
			Context: opts.Context,
			Format:  opts.Format,
		}),
		Content:   content,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// prepare validates the request and resolves the optional folder path.
func (s *suggestionService) prepare(ctx context.Context, ownerID int64, content string, folderID *int64) (string, error) {
	if s.provider == nil {
		return "", ErrAIUnavailable
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if folderID == nil {
		return "", nil
	}
	return s.subtree.FolderPath(ctx, ownerID, *folderID)
}

func (s *suggestionService) complete(ctx context.Context, action string, req ai.Request) (string, error) {
	text, err := s.provider.Complete(ctx, req)
	if err != nil {
		logger.Warn("ai completion failed", "module", "service", "action", action, "resource", "ai", "result", "failed", "provider", s.provider.Name(), "error", err)
		return "", fmt.Errorf("%s: %w", action, err)
	}
	return text, nil
}
