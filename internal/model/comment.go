package model

import "time"

// Comment targets exactly one of MangaID or ChapterID; the service layer
// enforces the exactly-one rule before persistence.
type Comment struct {
	ID        string
	MangaID   *string
	ChapterID *string
	Nickname  string
	Content   string
	ParentID  *string
	IsHidden  bool
	CreatedAt time.Time
}
