package model

import "time"

type Prompt struct {
	ID         int64
	OwnerID    int64
	FolderID   int64
	Title      string
	Prompt     string
	Tags       []string
	IsFavorite bool
	DeletedAt  *time.Time // set while the prompt sits in Trash
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TagCount is a tag with the number of prompts carrying it.
type TagCount struct {
	Tag   string
	Count int
}
