package database

import (
	"context"

	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/repositories"
)

// ImportFromCSV copies every record from a flat-file store into the
// relational store, in dependency order. The relational backend assigns
// fresh serial ids, so old ids are remapped as families and guests are
// inserted; a record whose parent cannot be resolved is skipped and logged,
// not fatal.
func ImportFromCSV(ctx context.Context, src *repositories.CSVStore, dst *repositories.GormStore) error {
	families, err := src.ListFamilies(ctx)
	if err != nil {
		return err
	}
	familyIDs := make(map[uint]uint, len(families))
	for _, f := range families {
		created, err := dst.InsertFamily(ctx, f.FamilyName)
		if err != nil {
			configslog.Log.Error("import: family insert failed, skipping",
				zap.String("familyName", f.FamilyName), zap.Error(err))
			continue
		}
		familyIDs[f.ID] = created.ID
	}
	configslog.SLog.Infof("Imported %d families", len(familyIDs))

	guests, err := src.ListGuests(ctx)
	if err != nil {
		return err
	}
	guestIDs := make(map[uint]uint, len(guests))
	for _, g := range guests {
		newFamilyID, ok := familyIDs[g.FamilyID]
		if !ok {
			configslog.Log.Warn("import: guest references unknown family, skipping",
				zap.Uint("guestID", g.ID), zap.Uint("familyID", g.FamilyID))
			continue
		}
		created, err := dst.InsertGuest(ctx, newFamilyID, g.FirstName, g.LastName, g.IsAdmin)
		if err != nil {
			configslog.Log.Error("import: guest insert failed, skipping",
				zap.Uint("guestID", g.ID), zap.Error(err))
			continue
		}
		guestIDs[g.ID] = created.ID
	}
	configslog.SLog.Infof("Imported %d guests", len(guestIDs))

	rsvps, err := src.ListRSVPs(ctx)
	if err != nil {
		return err
	}
	var imported int
	for _, r := range rsvps {
		newGuestID, ok := guestIDs[r.GuestID]
		if !ok {
			configslog.Log.Warn("import: rsvp references unknown guest, skipping",
				zap.Uint("rsvpID", r.ID), zap.Uint("guestID", r.GuestID))
			continue
		}
		record := r
		record.ID = 0
		record.GuestID = newGuestID
		if _, err := dst.InsertRSVP(ctx, &record); err != nil {
			configslog.Log.Error("import: rsvp insert failed, skipping",
				zap.Uint("rsvpID", r.ID), zap.Error(err))
			continue
		}
		imported++
	}
	configslog.SLog.Infof("Imported %d RSVPs", imported)

	return nil
}
