package entries

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts entry and returns it with the database-assigned id and
// creation time.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.OwnerID == "" {
		return nil, ErrEmptyOwner
	}

	query := `
		INSERT INTO entries (user_id, title, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, entry.OwnerID, entry.Title, entry.Secret).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// ListByOwner returns the entries of ownerID ordered by insertion.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	query := ` SELECT id, user_id, title, password, created_at FROM entries
		WHERE user_id=$1
		ORDER BY seq
		`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Secret, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
