// Package models defines the server-side records persisted by the stores.
package models

import "time"

// User is a registered identity. UserName is unique and compared
// case-sensitively, exactly as supplied at registration. PasswordHash is a
// bcrypt hash and is never sent to clients.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
