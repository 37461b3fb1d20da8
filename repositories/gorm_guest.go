package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

func (s *GormStore) ListGuests(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.getDB(ctx).Order("id").Find(&guests).Error; err != nil {
		configslog.Log.Error("GormStore.ListGuests: DB error, returning empty collection", zap.Error(err))
		return []models.Guest{}, nil
	}
	return guests, nil
}

func (s *GormStore) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.getDB(ctx).First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormStore.GetGuest: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (s *GormStore) ListGuestsByFamily(ctx context.Context, familyID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.getDB(ctx).Where("family_id = ?", familyID).Order("id").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GormStore.ListGuestsByFamily: DB error, returning empty collection",
			zap.Uint("familyID", familyID), zap.Error(err))
		return []models.Guest{}, nil
	}
	return guests, nil
}

func (s *GormStore) FindGuestByName(ctx context.Context, firstName, lastName string) (*models.GuestDetail, error) {
	var detail models.GuestDetail
	err := s.getDB(ctx).Model(&models.Guest{}).
		Select("guests.*, families.family_name").
		Joins("JOIN families ON families.id = guests.family_id").
		Where("LOWER(guests.first_name) = LOWER(?) AND LOWER(guests.last_name) = LOWER(?)", firstName, lastName).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormStore.FindGuestByName: DB error",
			zap.String("firstName", firstName), zap.String("lastName", lastName), zap.Error(err))
		return nil, err
	}
	return &detail, nil
}

func (s *GormStore) InsertGuest(ctx context.Context, familyID uint, firstName, lastName string, isAdmin bool) (*models.Guest, error) {
	guest := models.Guest{
		FamilyID:  familyID,
		FirstName: firstName,
		LastName:  lastName,
		IsAdmin:   isAdmin,
	}
	if err := s.getDB(ctx).Create(&guest).Error; err != nil {
		configslog.Log.Error("GormStore.InsertGuest: DB error", zap.Uint("familyID", familyID), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (s *GormStore) UpdateGuestName(ctx context.Context, id uint, firstName, lastName string) (*models.Guest, error) {
	result := s.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).
		Updates(map[string]interface{}{"first_name": firstName, "last_name": lastName})
	if result.Error != nil {
		configslog.Log.Error("GormStore.UpdateGuestName: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetGuest(ctx, id)
}

// DeleteGuest relies on the rsvps FK cascade for the guest's own RSVP rows.
func (s *GormStore) DeleteGuest(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.getDB(ctx).Delete(&models.Guest{}, id).Error; err != nil {
		configslog.Log.Error("GormStore.DeleteGuest: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return guest, nil
}
