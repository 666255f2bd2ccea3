package services

import (
	"time"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const SoftDeleteRetention = 7 * 24 * time.Hour

// DoAutoDatabaseCleanup permanently removes records that were soft deleted
// longer than SoftDeleteRetention ago. It returns the number of purged rows.
func DoAutoDatabaseCleanup(db *gorm.DB) int64 {
	deadline := time.Now().Add(-SoftDeleteRetention)

	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := db.Unscoped().Where("deleted_at IS NOT NULL AND deleted_at < ?", deadline).Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running database cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
	return count
}
