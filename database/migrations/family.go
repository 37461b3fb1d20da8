package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

// MigrateFamiliesTable creates/updates the families table.
func MigrateFamiliesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating families table...")
	if err := db.AutoMigrate(&models.Family{}); err != nil {
		configslog.Log.Error("Failed to migrate families table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Families table migrated successfully")
	return nil
}
