package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

// MigrateRSVPsTable creates/updates the rsvps table. The guests table must
// already exist for the cascading foreign key.
func MigrateRSVPsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps table...")
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvps table migrated successfully")
	return nil
}
