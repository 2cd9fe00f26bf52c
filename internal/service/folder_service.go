package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
)

// Direction moves a folder one step among its siblings.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// FolderService mutates an owner's folder forest. Every operation that
// touches more than one row runs in a single transaction.
type FolderService interface {
	Create(ctx context.Context, ownerID int64, name string, parentID *int64) (model.Folder, error)
	Rename(ctx context.Context, ownerID, id int64, name string) (model.Folder, error)
	// Delete removes the folder and its whole subtree. Prompts inside the
	// subtree are moved to Trash first.
	Delete(ctx context.Context, ownerID, id int64) error
	// Move reparents the folder, appending it to the end of its new siblings.
	// A nil parentID moves it to the root.
	Move(ctx context.Context, ownerID, id int64, parentID *int64) error
	// Reorder swaps the folder with its nearest sibling in direction. At the
	// edge it succeeds without changing anything.
	Reorder(ctx context.Context, ownerID, id int64, direction Direction) error
}

type folderService struct {
	tx      repository.TxManager
	folders repository.FolderRepository
	prompts repository.PromptRepository
	trash   TrashService
	subtree SubtreeService
}

func NewFolderService(
	tx repository.TxManager,
	folders repository.FolderRepository,
	prompts repository.PromptRepository,
	trash TrashService,
	subtree SubtreeService,
) FolderService {
	return &folderService{tx: tx, folders: folders, prompts: prompts, trash: trash, subtree: subtree}
}

// folderName cleans a user supplied name. The Trash name is reserved for the
// system folder.
func folderName(raw string) (string, error) {
	name := cleanName(raw)
	if name == "" {
		return "", ErrInvalid
	}
	if strings.EqualFold(name, model.TrashFolderName) {
		return "", fmt.Errorf("%w: folder name %q is reserved", ErrInvalid, name)
	}
	return name, nil
}

func (s *folderService) Create(ctx context.Context, ownerID int64, name string, parentID *int64) (model.Folder, error) {
	name, err := folderName(name)
	if err != nil {
		return model.Folder{}, err
	}

	var created model.Folder
	err = s.tx.ExecTx(ctx, func(ctx context.Context) error {
		if parentID != nil {
			parent, err := s.folders.GetByID(ctx, ownerID, *parentID)
			if err != nil {
				return notFound(err, "get parent folder")
			}
			if parent.IsSystem {
				return ErrForbidden
			}
		}

		sortOrder, err := s.nextSortOrder(ctx, ownerID, parentID)
		if err != nil {
			return err
		}
		created, err = s.folders.Create(ctx, model.Folder{
			OwnerID:   ownerID,
			Name:      name,
			ParentID:  parentID,
			SortOrder: sortOrder,
		})
		return err
	})
	if err != nil {
		return model.Folder{}, err
	}
	return created, nil
}

// nextSortOrder appends after the last sibling. Trash sits at -1, so a root
// level holding only Trash still starts at 0.
func (s *folderService) nextSortOrder(ctx context.Context, ownerID int64, parentID *int64) (int, error) {
	maxOrder, found, err := s.folders.MaxSortOrder(ctx, ownerID, parentID)
	if err != nil {
		return 0, fmt.Errorf("max sort order: %w", err)
	}
	if !found {
		return 0, nil
	}
	return maxOrder + 1, nil
}

func (s *folderService) Rename(ctx context.Context, ownerID, id int64, name string) (model.Folder, error) {
	folder, err := s.folders.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Folder{}, notFound(err, "get folder")
	}
	if folder.IsSystem {
		return model.Folder{}, ErrForbidden
	}
	name, err = folderName(name)
	if err != nil {
		return model.Folder{}, err
	}

	if err := s.folders.UpdateName(ctx, ownerID, id, name); err != nil {
		return model.Folder{}, notFound(err, "rename folder")
	}
	folder.Name = name
	folder.UpdatedAt = time.Now().UTC()
	return folder, nil
}

func (s *folderService) Delete(ctx context.Context, ownerID, id int64) error {
	var folders, prompts int64
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		folder, err := s.folders.GetByID(ctx, ownerID, id)
		if err != nil {
			return notFound(err, "get folder")
		}
		if folder.IsSystem {
			return ErrForbidden
		}

		trash, err := s.trash.GetTrash(ctx, ownerID)
		if err != nil {
			return err
		}
		ids, err := s.subtree.DescendantIDs(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := s.confirmSubtree(ctx, ownerID, id, ids); err != nil {
			return err
		}

		prompts, err = s.prompts.ReassignFolders(ctx, ownerID, ids, trash.ID, time.Now())
		if err != nil {
			return fmt.Errorf("move subtree prompts to trash: %w", err)
		}
		folders, err = s.folders.DeleteMany(ctx, ownerID, ids)
		if err != nil {
			return fmt.Errorf("delete subtree folders: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("folder deleted", "module", "service", "action", "delete", "resource", "folder", "result", "ok", "owner_id", ownerID, "folder_id", id, "folders", folders, "prompts", prompts)
	return nil
}

// confirmSubtree checks the expanded descendant set against the store's
// recursive query before anything is deleted.
func (s *folderService) confirmSubtree(ctx context.Context, ownerID, id int64, ids []int64) error {
	stored, err := s.folders.SubtreeIDs(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("list subtree ids: %w", err)
	}
	if len(stored) != len(ids) {
		return fmt.Errorf("subtree of folder %d has %d folders, store reports %d: %w", id, len(ids), len(stored), ErrInvariant)
	}
	for _, sid := range stored {
		if !slices.Contains(ids, sid) {
			return fmt.Errorf("folder %d missing from subtree of %d: %w", sid, id, ErrInvariant)
		}
	}
	return nil
}

func (s *folderService) Move(ctx context.Context, ownerID, id int64, parentID *int64) error {
	return s.tx.ExecTx(ctx, func(ctx context.Context) error {
		folder, err := s.folders.GetByID(ctx, ownerID, id)
		if err != nil {
			return notFound(err, "get folder")
		}
		if folder.IsSystem {
			return ErrForbidden
		}
		if parentID != nil && *parentID == id {
			return fmt.Errorf("folder cannot be its own parent: %w", ErrInvalid)
		}

		if parentID != nil {
			parent, err := s.folders.GetByID(ctx, ownerID, *parentID)
			if err != nil {
				return notFound(err, "get parent folder")
			}
			if parent.IsSystem {
				return ErrForbidden
			}
			subtree, err := s.subtree.DescendantIDs(ctx, ownerID, id)
			if err != nil {
				return err
			}
			if slices.Contains(subtree, *parentID) {
				return fmt.Errorf("cannot move into own subtree: %w", ErrInvalid)
			}
		}

		if sameParent(folder.ParentID, parentID) {
			return nil
		}

		sortOrder, err := s.nextSortOrder(ctx, ownerID, parentID)
		if err != nil {
			return err
		}
		if err := s.folders.UpdateParent(ctx, ownerID, id, parentID, sortOrder); err != nil {
			return notFound(err, "move folder")
		}
		logger.Debug("folder moved", "module", "service", "action", "update", "resource", "folder", "result", "ok", "owner_id", ownerID, "folder_id", id, "sort_order", sortOrder)
		return nil
	})
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *folderService) Reorder(ctx context.Context, ownerID, id int64, direction Direction) error {
	if !direction.Valid() {
		return fmt.Errorf("direction %q: %w", direction, ErrInvalid)
	}

	return s.tx.ExecTx(ctx, func(ctx context.Context) error {
		folder, err := s.folders.GetByID(ctx, ownerID, id)
		if err != nil {
			return notFound(err, "get folder")
		}
		if folder.IsSystem {
			return ErrForbidden
		}

		neighbor, err := s.folders.Neighbor(ctx, folder, direction == DirectionUp)
		if err != nil {
			return fmt.Errorf("find sibling: %w", err)
		}
		if neighbor == nil {
			return nil
		}

		if err := s.folders.UpdateSortOrder(ctx, ownerID, folder.ID, neighbor.SortOrder); err != nil {
			return fmt.Errorf("swap sort order: %w", err)
		}
		if err := s.folders.UpdateSortOrder(ctx, ownerID, neighbor.ID, folder.SortOrder); err != nil {
			return fmt.Errorf("swap sort order: %w", err)
		}
		return nil
	})
}
