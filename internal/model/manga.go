package model

import "time"

type Manga struct {
	ID          string
	Title       string
	Author      *string
	Description *string
	ImageURL    *string
	Slug        *string
	Views       int64
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Chapter struct {
	ID            string
	MangaID       string
	ChapterNumber int
	Title         *string
	Content       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
