package model

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// RoleAdmin grants moderation rights: hiding/deleting comments and
// managing manga, chapters and tags.
const RoleAdmin = "admin"
