// Package models holds the persistence records used by server repositories.
// These never cross the HTTP boundary; wire DTOs live in httpapi.
package models

import "time"

type User struct {
	ID             string
	FullName       string
	Email          string
	IsActive       bool
	IsSuperuser    bool
	HashedPassword string
	CreatedAt      time.Time
}
