package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
)

// SubtreeService answers read-only questions about an owner's folder forest.
type SubtreeService interface {
	// DescendantIDs returns folderID and every folder reachable below it.
	DescendantIDs(ctx context.Context, ownerID, folderID int64) ([]int64, error)
	PromptsInSubtree(ctx context.Context, ownerID, folderID int64) ([]model.Prompt, error)
	// BuildTree returns the owner's non-system folders as a forest.
	BuildTree(ctx context.Context, ownerID int64) ([]*model.FolderNode, error)
	// FolderPath returns the names from the root down to folderID joined by "/".
	FolderPath(ctx context.Context, ownerID, folderID int64) (string, error)
}

type subtreeService struct {
	folders repository.FolderRepository
	prompts repository.PromptRepository
}

func NewSubtreeService(folders repository.FolderRepository, prompts repository.PromptRepository) SubtreeService {
	return &subtreeService{folders: folders, prompts: prompts}
}

func (s *subtreeService) DescendantIDs(ctx context.Context, ownerID, folderID int64) ([]int64, error) {
	folders, err := s.folders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return descendants(folders, folderID)
}

// descendants expands {folderID} over the flat parent pointers until nothing
// new is added. Every productive round adds at least one folder, so more
// rounds than folders means the data is corrupt.
func descendants(folders []model.Folder, folderID int64) ([]int64, error) {
	var root *model.Folder
	for i := range folders {
		if folders[i].ID == folderID {
			root = &folders[i]
			break
		}
	}
	if root == nil {
		return nil, ErrNotFound
	}

	seen := map[int64]struct{}{folderID: {}}
	ids := []int64{folderID}
	for round := 0; ; round++ {
		if round > len(folders) {
			return nil, fmt.Errorf("descendants of folder %d did not converge: %w", folderID, ErrInvariant)
		}
		added := false
		for _, f := range folders {
			if f.ParentID == nil {
				continue
			}
			if _, ok := seen[*f.ParentID]; !ok {
				continue
			}
			if _, ok := seen[f.ID]; ok {
				continue
			}
			seen[f.ID] = struct{}{}
			ids = append(ids, f.ID)
			added = true
		}
		if !added {
			break
		}
	}

	// A folder whose own parent sits below it closes a cycle.
	if root.ParentID != nil {
		if _, ok := seen[*root.ParentID]; ok {
			return nil, fmt.Errorf("folder %d is its own ancestor: %w", folderID, ErrInvariant)
		}
	}
	return ids, nil
}

func (s *subtreeService) PromptsInSubtree(ctx context.Context, ownerID, folderID int64) ([]model.Prompt, error) {
	if _, err := s.folders.GetByID(ctx, ownerID, folderID); err != nil {
		return nil, notFound(err, "get folder")
	}
	prompts, err := s.prompts.ListInSubtree(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("list subtree prompts: %w", err)
	}
	return prompts, nil
}

func (s *subtreeService) BuildTree(ctx context.Context, ownerID int64) ([]*model.FolderNode, error) {
	folders, err := s.folders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return buildForest(folders), nil
}

func buildForest(folders []model.Folder) []*model.FolderNode {
	sorted := slices.Clone(folders)
	slices.SortStableFunc(sorted, func(a, b model.Folder) int {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder - b.SortOrder
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	// First pass: a node for every user folder.
	nodes := make(map[int64]*model.FolderNode, len(sorted))
	for _, f := range sorted {
		if f.IsSystem {
			continue
		}
		nodes[f.ID] = &model.FolderNode{Folder: f, Children: []*model.FolderNode{}}
	}

	// Second pass: attach children in sorted order, collecting roots.
	roots := []*model.FolderNode{}
	for _, f := range sorted {
		node, ok := nodes[f.ID]
		if !ok {
			continue
		}
		if f.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*f.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}

func (s *subtreeService) FolderPath(ctx context.Context, ownerID, folderID int64) (string, error) {
	folders, err := s.folders.ListByOwner(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("list folders: %w", err)
	}
	byID := make(map[int64]model.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	current, ok := byID[folderID]
	if !ok {
		return "", ErrNotFound
	}
	var names []string
	for steps := 0; ; steps++ {
		if steps > len(folders) {
			return "", fmt.Errorf("path of folder %d: %w", folderID, ErrInvariant)
		}
		names = append(names, current.Name)
		if current.ParentID == nil {
			break
		}
		parent, ok := byID[*current.ParentID]
		if !ok {
			break
		}
		current = parent
	}
	slices.Reverse(names)
	return strings.Join(names, "/"), nil
}
