package model

import "time"

// TrashFolderName is the reserved name of the per-owner system folder.
const TrashFolderName = "Trash"

// TrashSortOrder keeps Trash below every user folder among root siblings.
const TrashSortOrder = -1

type Folder struct {
	ID        int64
	OwnerID   int64
	Name      string
	ParentID  *int64
	SortOrder int
	IsSystem  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderNode is a folder with its children in sort order.
type FolderNode struct {
	Folder
	Children []*FolderNode
}
