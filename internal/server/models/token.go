package models

import "time"

// Token is an opaque bearer credential mapped 1:1 to a user.
// Tokens do not expire and carry no scopes.
type Token struct {
	ID        string
	Value     string
	UserID    string
	CreatedAt time.Time
}
