package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

// SeedAdminFamily ensures the designated administrator family and one admin
// guest exist. Already-seeded databases are left alone.
func SeedAdminFamily(db *gorm.DB, firstName, lastName string) error {
	var family models.Family
	err := db.Where("family_name = ?", models.AdminFamilyName).First(&family).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		family = models.Family{FamilyName: models.AdminFamilyName}
		if err := db.Create(&family).Error; err != nil {
			configslog.Log.Error("Failed to seed admin family", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Admin family created (ID: %d)", family.ID)
	} else if err != nil {
		configslog.Log.Error("Admin family lookup failed", zap.Error(err))
		return err
	}

	var adminCount int64
	if err := db.Model(&models.Guest{}).Where("family_id = ? AND is_admin = ?", family.ID, true).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount > 0 {
		configslog.SLog.Debug("Admin guest already present, skipping seed")
		return nil
	}

	admin := models.Guest{
		FamilyID:  family.ID,
		FirstName: firstName,
		LastName:  lastName,
		IsAdmin:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Failed to seed admin guest", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Admin guest %s %s created (ID: %d)", firstName, lastName, admin.ID)
	return nil
}
