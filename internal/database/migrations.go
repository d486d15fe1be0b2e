package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes all database migrations
func RunMigrations(db *gorm.DB) error {
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

func createIndexes(db *gorm.DB) error {
	// Audit listing is newest first
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_request_logs_time
		ON request_logs(request_time)
	`).Error; err != nil {
		return err
	}

	// Who looked at a file
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_request_logs_file
		ON request_logs(file_id, part_id)
	`).Error; err != nil {
		return err
	}

	return nil
}
