package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/database/migrations"
	"rsvp.link/database/seeders"
)

// Initialize runs migrations and seeders inside one transaction. Both steps
// are optional; with neither flag set this is a no-op.
func Initialize(db *gorm.DB, migrate bool, seed bool, adminFirstName, adminLastName string) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, skipping database initialization")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		configslog.SLog.Info("Database initialization starting...")

		if migrate {
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
		}

		if seed {
			if err := seeders.SeedAdminFamily(tx, adminFirstName, adminLastName); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
		}

		configslog.SLog.Info("Database initialization completed successfully")
		return nil
	})
}

// RunMigrationsInOrder migrates parents before children so the cascading
// foreign keys can be created.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateFamiliesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateGuestsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateRSVPsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info("All migrations ran successfully")
	return nil
}
