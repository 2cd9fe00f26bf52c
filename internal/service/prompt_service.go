package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
)

const (
	DefaultTopTags = 15
	untitledPrompt = "Untitled"
)

// PromptInput is the writable part of a prompt.
type PromptInput struct {
	Title    string
	Prompt   string
	Tags     []string
	FolderID int64
}

type PromptService interface {
	Create(ctx context.Context, ownerID int64, in PromptInput) (model.Prompt, error)
	Get(ctx context.Context, ownerID, id int64) (model.Prompt, error)
	// List returns the owner's prompts, optionally only those directly in folderID.
	List(ctx context.Context, ownerID int64, folderID *int64, favoritesOnly bool) ([]model.Prompt, error)
	// Update rewrites the prompt. Moving into Trash stamps deleted_at and
	// moving out of it clears the stamp.
	Update(ctx context.Context, ownerID, id int64, in PromptInput) (model.Prompt, error)
	SetFavorite(ctx context.Context, ownerID, id int64, favorite bool) error
	// Delete removes the prompt permanently.
	Delete(ctx context.Context, ownerID, id int64) error
	// TopTags returns the most used tags, most frequent first and ties by name.
	TopTags(ctx context.Context, ownerID int64, limit int) ([]model.TagCount, error)
}

type promptService struct {
	tx      repository.TxManager
	prompts repository.PromptRepository
	folders repository.FolderRepository
}

func NewPromptService(tx repository.TxManager, prompts repository.PromptRepository, folders repository.FolderRepository) PromptService {
	return &promptService{tx: tx, prompts: prompts, folders: folders}
}

func (s *promptService) Create(ctx context.Context, ownerID int64, in PromptInput) (model.Prompt, error) {
	var created model.Prompt
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		folder, err := s.folders.GetByID(ctx, ownerID, in.FolderID)
		if err != nil {
			return notFound(err, "get folder")
		}
		if folder.IsSystem {
			return ErrForbidden
		}

		created, err = s.prompts.Create(ctx, model.Prompt{
			OwnerID:  ownerID,
			FolderID: folder.ID,
			Title:    cleanTitle(in.Title),
			Prompt:   in.Prompt,
			Tags:     normalizeTags(in.Tags),
		})
		if err != nil {
			return fmt.Errorf("create prompt: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Prompt{}, err
	}
	return created, nil
}

func (s *promptService) Get(ctx context.Context, ownerID, id int64) (model.Prompt, error) {
	prompt, err := s.prompts.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Prompt{}, notFound(err, "get prompt")
	}
	return prompt, nil
}

func (s *promptService) List(ctx context.Context, ownerID int64, folderID *int64, favoritesOnly bool) ([]model.Prompt, error) {
	if folderID != nil {
		if _, err := s.folders.GetByID(ctx, ownerID, *folderID); err != nil {
			return nil, notFound(err, "get folder")
		}
	}
	prompts, err := s.prompts.List(ctx, ownerID, repository.PromptListFilter{FolderID: folderID, FavoritesOnly: favoritesOnly})
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

func (s *promptService) Update(ctx context.Context, ownerID, id int64, in PromptInput) (model.Prompt, error) {
	var updated model.Prompt
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		current, err := s.prompts.GetByID(ctx, ownerID, id)
		if err != nil {
			return notFound(err, "get prompt")
		}
		folder, err := s.folders.GetByID(ctx, ownerID, in.FolderID)
		if err != nil {
			return notFound(err, "get folder")
		}

		next := current
		next.Title = cleanTitle(in.Title)
		next.Prompt = in.Prompt
		next.Tags = normalizeTags(in.Tags)
		next.FolderID = folder.ID
		switch {
		case !folder.IsSystem:
			next.DeletedAt = nil
		case current.FolderID != folder.ID || current.DeletedAt == nil:
			now := time.Now()
			next.DeletedAt = &now
		}

		updated, err = s.prompts.Update(ctx, next)
		if err != nil {
			return notFound(err, "update prompt")
		}
		return nil
	})
	if err != nil {
		return model.Prompt{}, err
	}
	return updated, nil
}

func (s *promptService) SetFavorite(ctx context.Context, ownerID, id int64, favorite bool) error {
	if err := s.prompts.SetFavorite(ctx, ownerID, id, favorite); err != nil {
		return notFound(err, "set favorite")
	}
	return nil
}

func (s *promptService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.prompts.Delete(ctx, ownerID, id); err != nil {
		return notFound(err, "delete prompt")
	}
	return nil
}

func (s *promptService) TopTags(ctx context.Context, ownerID int64, limit int) ([]model.TagCount, error) {
	if limit <= 0 {
		limit = DefaultTopTags
	}
	sets, err := s.prompts.ListTags(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	counts := make(map[string]int)
	for _, tags := range sets {
		for _, tag := range normalizeTags(tags) {
			counts[tag]++
		}
	}

	result := make([]model.TagCount, 0, len(counts))
	for tag, n := range counts {
		result = append(result, model.TagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(result, func(a, b model.TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func cleanTitle(title string) string {
	if title = cleanName(title); title == "" {
		return untitledPrompt
	}
	return title
}

// normalizeTags cleans every tag, dropping blanks and repeats while keeping
// first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = cleanName(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
