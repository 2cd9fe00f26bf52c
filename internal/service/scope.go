package service

import (
	"context"

	"promptcraft/backend/internal/model"
)

type ownerKey struct{}

// WithOwner stores the authenticated owner id in ctx.
func WithOwner(ctx context.Context, ownerID int64) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFrom returns the owner id stored by WithOwner, or ErrUnauthorized.
func OwnerFrom(ctx context.Context) (int64, error) {
	ownerID, ok := ctx.Value(ownerKey{}).(int64)
	if !ok || ownerID == 0 {
		return 0, ErrUnauthorized
	}
	return ownerID, nil
}

// Scoper hands out workspaces bound to a single owner.
type Scoper struct {
	folders FolderService
	trash   TrashService
	subtree SubtreeService
}

func NewScoper(folders FolderService, trash TrashService, subtree SubtreeService) *Scoper {
	return &Scoper{folders: folders, trash: trash, subtree: subtree}
}

// For returns the workspace of ownerID.
func (s *Scoper) For(ownerID int64) (*Workspace, error) {
	if ownerID == 0 {
		return nil, ErrUnauthorized
	}
	return &Workspace{ownerID: ownerID, scoper: s}, nil
}

// FromContext returns the workspace of the owner carried by ctx.
func (s *Scoper) FromContext(ctx context.Context) (*Workspace, error) {
	ownerID, err := OwnerFrom(ctx)
	if err != nil {
		return nil, err
	}
	return s.For(ownerID)
}

// Workspace is the folder engine with the owner filled in. Nothing reachable
// through it can observe or change another owner's rows.
type Workspace struct {
	ownerID int64
	scoper  *Scoper
}

func (w *Workspace) OwnerID() int64 {
	return w.ownerID
}

func (w *Workspace) CreateFolder(ctx context.Context, name string, parentID *int64) (model.Folder, error) {
	return w.scoper.folders.Create(ctx, w.ownerID, name, parentID)
}

func (w *Workspace) RenameFolder(ctx context.Context, id int64, name string) (model.Folder, error) {
	return w.scoper.folders.Rename(ctx, w.ownerID, id, name)
}

func (w *Workspace) DeleteFolder(ctx context.Context, id int64) error {
	return w.scoper.folders.Delete(ctx, w.ownerID, id)
}

func (w *Workspace) MoveFolder(ctx context.Context, id int64, parentID *int64) error {
	return w.scoper.folders.Move(ctx, w.ownerID, id, parentID)
}

func (w *Workspace) ReorderFolder(ctx context.Context, id int64, direction Direction) error {
	return w.scoper.folders.Reorder(ctx, w.ownerID, id, direction)
}

func (w *Workspace) GetTree(ctx context.Context) ([]*model.FolderNode, error) {
	return w.scoper.subtree.BuildTree(ctx, w.ownerID)
}

func (w *Workspace) GetTrash(ctx context.Context) (model.Folder, error) {
	return w.scoper.trash.GetTrash(ctx, w.ownerID)
}

func (w *Workspace) MoveToTrash(ctx context.Context, promptID int64) error {
	return w.scoper.trash.MoveToTrash(ctx, w.ownerID, promptID)
}

func (w *Workspace) DescendantIDs(ctx context.Context, folderID int64) ([]int64, error) {
	return w.scoper.subtree.DescendantIDs(ctx, w.ownerID, folderID)
}

func (w *Workspace) PromptsInSubtree(ctx context.Context, folderID int64) ([]model.Prompt, error) {
	return w.scoper.subtree.PromptsInSubtree(ctx, w.ownerID, folderID)
}

func (w *Workspace) FolderPath(ctx context.Context, folderID int64) (string, error) {
	return w.scoper.subtree.FolderPath(ctx, w.ownerID, folderID)
}
