package medicationrepo

import (
	"context"
	"errors"

	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMedicationRepository implements ports.MedicationRepository using GORM.
type GormMedicationRepository struct {
	db *gorm.DB
}

// NewGormMedicationRepository binds the repository to the pool or a transaction.
func NewGormMedicationRepository(db *gorm.DB) *GormMedicationRepository {
	return &GormMedicationRepository{db: db}
}

// Add inserts the item and assigns the generated id to it.
func (r *GormMedicationRepository) Add(ctx context.Context, item *medication.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignID(dto.ID)
}

// Update overwrites every editable column including drone_id. An unknown id is
// errs.ObjectNotFoundError.
func (r *GormMedicationRepository) Update(ctx context.Context, item *medication.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MedicationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":               dto.Name,
			"code":               dto.Code,
			"weight":             dto.Weight,
			"image":              dto.Image,
			"image_content_type": dto.ImageContentType,
			"drone_id":           dto.DroneID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medication", dto.ID)
	}

	return nil
}

// Get reads one item. A missing row is errs.ObjectNotFoundError.
func (r *GormMedicationRepository) Get(ctx context.Context, id int64) (*medication.Item, error) {
	var dto MedicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medication", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByDrone lists the items carried by droneID in insertion order. An empty
// drone yields an empty slice.
//
// Example:
//
//	existing, err := uow.MedicationRepository().FindByDrone(ctx, d.ID())
//	if err != nil {
//	    return err
//	}
//	state, err := validator.Validate(d, existing, candidate)
func (r *GormMedicationRepository) FindByDrone(ctx context.Context, droneID int64) ([]*medication.Item, error) {
	var dtos []MedicationDTO
	if err := r.db.WithContext(ctx).Where("drone_id = ?", droneID).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*medication.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
