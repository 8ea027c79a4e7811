package client

import (
	"context"
	"time"
)

// Entry is a vault entry as the CLI shows it.
type Entry struct {
	ID        string
	Title     string
	Password  string
	CreatedAt time.Time
}

// Session describes the identity behind a verified token.
type Session struct {
	UserID   string
	Username string
}

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (string, error)
	Verify(ctx context.Context) (*Session, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	AddEntry(ctx context.Context, title string, password []byte) (string, error)
}
