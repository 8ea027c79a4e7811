package models

import "time"

// Entry is one stored secret. OwnerID is the ID of the User that owns it;
// it is set once on creation from the authenticated caller. Secret is kept
// and returned verbatim.
type Entry struct {
	ID        string
	OwnerID   string
	Title     string
	Secret    string
	CreatedAt time.Time
}
