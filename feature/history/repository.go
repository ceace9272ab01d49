package history

import (
	"context"
	"fmt"
	"strings"

	"figma-asset-downloader/core/database"

	"gorm.io/gorm"
)

// DefaultLimit bounds List when no limit is given.
const DefaultLimit = 50

// Repository stores download records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history table and verifies its schema.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&DownloadRecord{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}

	missing, err := database.MissingColumns(r.db.WithContext(ctx), TableName, requiredColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", TableName, strings.Join(missing, ", "))
	}
	return nil
}

// Record stores the given records in one batch.
func (r *Repository) Record(ctx context.Context, records ...DownloadRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&records, 100).Error; err != nil {
		return fmt.Errorf("failed to record downloads: %w", err)
	}
	return nil
}

// List returns the latest records, newest first.
// A non-positive limit means DefaultLimit.
func (r *Repository) List(ctx context.Context, limit int) ([]DownloadRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var records []DownloadRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	return records, nil
}
