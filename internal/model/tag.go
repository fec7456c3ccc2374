package model

import "time"

type Tag struct {
	ID        string
	Name      string
	Category  string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
