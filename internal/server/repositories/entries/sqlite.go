package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sqliteEntry struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"type:text;not null;uniqueIndex"`
	UserID    string    `gorm:"column:user_id;type:text;not null;index:idx_entries_user_seq"`
	Title     string    `gorm:"type:text;not null"`
	Password  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (sqliteEntry) TableName() string { return "entries" }

// MigrateSQLite creates the entries table when it does not exist.
func MigrateSQLite(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&sqliteEntry{})
}

// SQLiteRepository stores entries through gorm in an embedded SQLite file.
type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.OwnerID == "" {
		return nil, ErrEmptyOwner
	}

	rec := sqliteEntry{
		ID:        uuid.NewString(),
		UserID:    entry.OwnerID,
		Title:     entry.Title,
		Password:  entry.Secret,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	entry.ID = rec.ID
	entry.CreatedAt = rec.CreatedAt
	return entry, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error) {
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	var recs []sqliteEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("seq").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}

	result := make([]*models.Entry, 0, len(recs))
	for _, rec := range recs {
		result = append(result, &models.Entry{
			ID:        rec.ID,
			OwnerID:   rec.UserID,
			Title:     rec.Title,
			Secret:    rec.Password,
			CreatedAt: rec.CreatedAt,
		})
	}
	return result, nil
}
