package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
)

const purgeConcurrency = 4

// TrashService manages the per-owner system folder used for soft deletes.
type TrashService interface {
	// Provision creates the owner's Trash, or returns it when it already exists.
	Provision(ctx context.Context, ownerID int64) (model.Folder, error)
	GetTrash(ctx context.Context, ownerID int64) (model.Folder, error)
	MoveToTrash(ctx context.Context, ownerID, promptID int64) error
	// PurgeExpired permanently deletes trashed prompts older than olderThan
	// and returns how many were removed.
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

type trashService struct {
	folders repository.FolderRepository
	prompts repository.PromptRepository
}

func NewTrashService(folders repository.FolderRepository, prompts repository.PromptRepository) TrashService {
	return &trashService{folders: folders, prompts: prompts}
}

func (s *trashService) Provision(ctx context.Context, ownerID int64) (model.Folder, error) {
	trash, err := s.folders.GetSystem(ctx, ownerID)
	if err == nil {
		return trash, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Folder{}, fmt.Errorf("get trash: %w", err)
	}

	trash, err = s.folders.Create(ctx, model.Folder{
		OwnerID:   ownerID,
		Name:      model.TrashFolderName,
		SortOrder: model.TrashSortOrder,
		IsSystem:  true,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return s.GetTrash(ctx, ownerID)
		}
		return model.Folder{}, fmt.Errorf("create trash: %w", err)
	}
	logger.Info("trash provisioned", "module", "service", "action", "create", "resource", "folder", "result", "ok", "owner_id", ownerID, "folder_id", trash.ID)
	return trash, nil
}

func (s *trashService) GetTrash(ctx context.Context, ownerID int64) (model.Folder, error) {
	trash, err := s.folders.GetSystem(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Folder{}, fmt.Errorf("owner %d has no trash folder: %w", ownerID, ErrInvariant)
		}
		return model.Folder{}, fmt.Errorf("get trash: %w", err)
	}
	return trash, nil
}

func (s *trashService) MoveToTrash(ctx context.Context, ownerID, promptID int64) error {
	prompt, err := s.prompts.GetByID(ctx, ownerID, promptID)
	if err != nil {
		return notFound(err, "get prompt")
	}
	trash, err := s.GetTrash(ctx, ownerID)
	if err != nil {
		return err
	}
	if prompt.FolderID == trash.ID {
		return nil
	}

	now := time.Now()
	if err := s.prompts.MoveToFolder(ctx, ownerID, promptID, trash.ID, &now); err != nil {
		return notFound(err, "move prompt to trash")
	}
	return nil
}

func (s *trashService) PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-olderThan)
	owners, err := s.prompts.OwnersWithExpiredTrash(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list owners with expired trash: %w", err)
	}

	var purged atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(purgeConcurrency)
	for _, ownerID := range owners {
		g.Go(func() error {
			trash, err := s.GetTrash(gctx, ownerID)
			if err != nil {
				return err
			}
			n, err := s.prompts.DeleteExpired(gctx, ownerID, trash.ID, cutoff)
			if err != nil {
				return fmt.Errorf("purge trash of owner %d: %w", ownerID, err)
			}
			purged.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return purged.Load(), err
	}

	if n := purged.Load(); n > 0 {
		logger.Info("trash purged", "module", "service", "action", "delete", "resource", "prompt", "result", "ok", "owners", len(owners), "count", n)
	}
	return purged.Load(), nil
}
