package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

const rsvpDetailSelect = "rsvps.*, guests.first_name, guests.last_name, families.family_name"

func (s *GormStore) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	if err := s.getDB(ctx).Order("id").Find(&rsvps).Error; err != nil {
		configslog.Log.Error("GormStore.ListRSVPs: DB error, returning empty collection", zap.Error(err))
		return []models.RSVP{}, nil
	}
	return rsvps, nil
}

func (s *GormStore) FindRSVPByGuest(ctx context.Context, guestID uint) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := s.getDB(ctx).Where("guest_id = ?", guestID).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormStore.FindRSVPByGuest: DB error", zap.Uint("guestID", guestID), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

func (s *GormStore) FindRSVPByFamily(ctx context.Context, familyID uint) (*models.RSVPDetail, error) {
	var detail models.RSVPDetail
	err := s.getDB(ctx).Model(&models.RSVP{}).
		Select(rsvpDetailSelect).
		Joins("JOIN guests ON guests.id = rsvps.guest_id").
		Joins("JOIN families ON families.id = guests.family_id").
		Where("guests.family_id = ?", familyID).
		Order("rsvps.created_at DESC").
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GormStore.FindRSVPByFamily: DB error", zap.Uint("familyID", familyID), zap.Error(err))
		return nil, err
	}
	return &detail, nil
}

func (s *GormStore) ListRSVPsByFamily(ctx context.Context, familyID uint) ([]models.RSVPDetail, error) {
	var details []models.RSVPDetail
	err := s.getDB(ctx).Model(&models.RSVP{}).
		Select(rsvpDetailSelect).
		Joins("JOIN guests ON guests.id = rsvps.guest_id").
		Joins("JOIN families ON families.id = guests.family_id").
		Where("guests.family_id = ?", familyID).
		Order("rsvps.created_at DESC").
		Find(&details).Error
	if err != nil {
		configslog.Log.Error("GormStore.ListRSVPsByFamily: DB error, returning empty collection",
			zap.Uint("familyID", familyID), zap.Error(err))
		return []models.RSVPDetail{}, nil
	}
	return details, nil
}

func (s *GormStore) InsertRSVP(ctx context.Context, rsvp *models.RSVP) (*models.RSVP, error) {
	created := models.RSVP{
		GuestID:             rsvp.GuestID,
		WillAttend:          rsvp.WillAttend,
		DietaryRestrictions: rsvp.DietaryRestrictions,
		IndividualNotes:     rsvp.IndividualNotes,
	}
	if err := s.getDB(ctx).Create(&created).Error; err != nil {
		configslog.Log.Error("GormStore.InsertRSVP: DB error", zap.Uint("guestID", rsvp.GuestID), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// UpdateRSVP overwrites the response fields; guest_id is deliberately not in
// the update set, so the row keeps pointing at the member it was created for.
func (s *GormStore) UpdateRSVP(ctx context.Context, id uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error) {
	result := s.getDB(ctx).Model(&models.RSVP{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"will_attend":          willAttend,
			"dietary_restrictions": dietaryRestrictions,
			"individual_notes":     individualNotes,
		})
	if result.Error != nil {
		configslog.Log.Error("GormStore.UpdateRSVP: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var rsvp models.RSVP
	if err := s.getDB(ctx).First(&rsvp, id).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}
