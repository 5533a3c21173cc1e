package models

import "time"

type Item struct {
	ID          string
	Title       string
	Description *string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
