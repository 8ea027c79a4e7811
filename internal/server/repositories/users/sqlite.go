package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sqliteUser struct {
	ID           string    `gorm:"primaryKey;type:text"`
	UserName     string    `gorm:"column:username;type:text;not null;uniqueIndex:uq_users_username"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (sqliteUser) TableName() string { return "users" }

// MigrateSQLite creates the users table when it does not exist.
func MigrateSQLite(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&sqliteUser{})
}

// SQLiteRepository stores users through gorm in an embedded SQLite file.
type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	rec := sqliteUser{
		ID:           uuid.NewString(),
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = rec.ID
	user.CreatedAt = rec.CreatedAt
	return user, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var rec sqliteUser
	err := r.db.WithContext(ctx).Where("username = ?", login).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &models.User{
		ID:           rec.ID,
		UserName:     rec.UserName,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

// isDuplicateKey recognises a unique violation whether or not the dialector
// translated it (gorm.Config.TranslateError).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
