package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

// ListFamilies fails open: a query error is logged and an empty collection
// returned, indistinguishable from a legitimately empty table.
func (s *GormStore) ListFamilies(ctx context.Context) ([]models.Family, error) {
	var families []models.Family
	if err := s.getDB(ctx).Order("id").Find(&families).Error; err != nil {
		configslog.Log.Error("GormStore.ListFamilies: DB error, returning empty collection", zap.Error(err))
		return []models.Family{}, nil
	}
	return families, nil
}

func (s *GormStore) GetFamily(ctx context.Context, id uint) (*models.Family, error) {
	var family models.Family
	if err := s.getDB(ctx).First(&family, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormStore.GetFamily: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &family, nil
}

func (s *GormStore) InsertFamily(ctx context.Context, familyName string) (*models.Family, error) {
	family := models.Family{FamilyName: familyName}
	if err := s.getDB(ctx).Create(&family).Error; err != nil {
		configslog.Log.Error("GormStore.InsertFamily: DB error", zap.String("familyName", familyName), zap.Error(err))
		return nil, err
	}
	return &family, nil
}

// DeleteFamily counts members before the delete; the ON DELETE CASCADE
// constraints take guests and their RSVPs down with the family row.
func (s *GormStore) DeleteFamily(ctx context.Context, id uint) (*models.Family, int, error) {
	db := s.getDB(ctx)

	family, err := s.GetFamily(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	var memberCount int64
	if err := db.Model(&models.Guest{}).Where("family_id = ?", id).Count(&memberCount).Error; err != nil {
		configslog.Log.Error("GormStore.DeleteFamily: member count failed", zap.Uint("id", id), zap.Error(err))
		return nil, 0, err
	}

	if err := db.Delete(&models.Family{}, id).Error; err != nil {
		configslog.Log.Error("GormStore.DeleteFamily: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, 0, err
	}

	return family, int(memberCount), nil
}
