package services

import (
	"carligo-backend/models"

	"gorm.io/gorm"
)

// SupplementService owns the supplement/vehicle association table.
// Nothing else writes vehicle_supplements rows.
type SupplementService struct {
	DB *gorm.DB
}

// SyncVehicles replaces the association rows for a supplement so that the
// final state matches exactly the target set. Full replace, not a diff:
// delete everything for the supplement, then bulk-insert the target set.
// The expected cardinality is tens of vehicles, so the simplicity wins.
func (s *SupplementService) SyncVehicles(supplementID uint, vehicleIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplement_id = ?", supplementID).
			Delete(&models.VehicleSupplement{}).Error; err != nil {
			return err
		}

		if len(vehicleIDs) == 0 {
			return nil
		}

		links := make([]models.VehicleSupplement, 0, len(vehicleIDs))
		for _, vid := range vehicleIDs {
			links = append(links, models.VehicleSupplement{
				VehicleID:    vid,
				SupplementID: supplementID,
			})
		}
		return tx.Create(&links).Error
	})
}

// VehicleIDs returns the ids of the vehicles a supplement applies to.
// Never nil, so an empty set serializes as [] rather than null.
func (s *SupplementService) VehicleIDs(supplementID uint) ([]uint, error) {
	ids := []uint{}
	err := s.DB.Model(&models.VehicleSupplement{}).
		Where("supplement_id = ?", supplementID).
		Order("vehicle_id").
		Pluck("vehicle_id", &ids).Error
	return ids, err
}

// AttachVehicleIDs materializes the derived vehicle_ids attribute on each
// supplement from a single pass over the association table.
func (s *SupplementService) AttachVehicleIDs(supplements []models.Supplement) error {
	var links []models.VehicleSupplement
	if err := s.DB.Order("vehicle_id").Find(&links).Error; err != nil {
		return err
	}

	bySupplement := make(map[uint][]uint, len(supplements))
	for _, l := range links {
		bySupplement[l.SupplementID] = append(bySupplement[l.SupplementID], l.VehicleID)
	}

	for i := range supplements {
		if ids, ok := bySupplement[supplements[i].ID]; ok {
			supplements[i].VehicleIDs = ids
		} else {
			supplements[i].VehicleIDs = []uint{}
		}
	}
	return nil
}
