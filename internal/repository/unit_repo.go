package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/model"
)

// StatusCount one dashboard bucket. Status is a VacancyState or model.BucketUnlisted.
type StatusCount struct {
	Status string
	Total  int64
}

// UnitRepository unit data access and the owner-scoped status queries.
type UnitRepository interface {
	// Create inserts the unit and bumps properties.unit_count in one transaction.
	Create(ctx context.Context, unit *model.Unit) error
	GetByID(ctx context.Context, id string) (*model.Unit, error)
	// ListByOwner returns the owner's units with property and status, optionally for one property.
	ListByOwner(ctx context.Context, ownerID, propertyID string) ([]model.Unit, error)
	Update(ctx context.Context, unit *model.Unit) error
	// Delete removes the unit (its status cascades) and decrements unit_count.
	Delete(ctx context.Context, unit *model.Unit) error

	ListByOwnerAndStatus(ctx context.Context, ownerID string, status model.VacancyState) ([]model.Unit, error)
	ListUnlistedByOwner(ctx context.Context, ownerID string) ([]model.Unit, error)
	CountByStatus(ctx context.Context, ownerID string) ([]StatusCount, error)
	ListByStatuses(ctx context.Context, statuses []model.VacancyState) ([]model.Unit, error)
}

type unitRepo struct {
	db *gorm.DB
}

// NewUnitRepo creates a UnitRepository.
func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, unit *model.Unit) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Property", "VacancyStatus").Create(unit).Error; err != nil {
			return err
		}
		return tx.Model(&model.Property{}).
			Where("property_id = ?", unit.PropertyID).
			UpdateColumn("unit_count", gorm.Expr("unit_count + 1")).Error
	})
	if isForeignKeyViolation(err) {
		return ErrReferenceMissing
	}
	return err
}

func (r *unitRepo) GetByID(ctx context.Context, id string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("VacancyStatus").
		Where("unit_id = ?", id).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) ListByOwner(ctx context.Context, ownerID, propertyID string) ([]model.Unit, error) {
	var units []model.Unit
	db := r.db.WithContext(ctx).
		Preload("Property").
		Preload("VacancyStatus").
		Where("owner_id = ?", ownerID)
	if propertyID != "" {
		db = db.Where("property_id = ?", propertyID)
	}
	err := db.Order("unit_id ASC").Find(&units).Error
	return units, err
}

// Update writes descriptive columns; property_id and owner_id are immutable.
// Update returns gorm.ErrRecordNotFound when the unit no longer exists.
func (r *unitRepo) Update(ctx context.Context, unit *model.Unit) error {
	res := r.db.WithContext(ctx).
		Model(&model.Unit{}).
		Where("unit_id = ?", unit.UnitID).
		Updates(map[string]interface{}{
			"unit_code":            unit.UnitCode,
			"unit_number":          unit.UnitNumber,
			"floor_number":         unit.FloorNumber,
			"category":             unit.Category,
			"price":                unit.Price,
			"bedrooms":             unit.Bedrooms,
			"bathrooms":            unit.Bathrooms,
			"furnished":            unit.Furnished,
			"furnished_extra_info": unit.FurnishedExtraInfo,
			"sqft":                 unit.Sqft,
			"description":          unit.Description,
			"updated_by":           unit.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *unitRepo) Delete(ctx context.Context, unit *model.Unit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("unit_id = ?", unit.UnitID).Delete(&model.Unit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Property{}).
			Where("property_id = ? AND unit_count > 0", unit.PropertyID).
			UpdateColumn("unit_count", gorm.Expr("unit_count - 1")).Error
	})
}

// ── status queries ──

func (r *unitRepo) ListByOwnerAndStatus(ctx context.Context, ownerID string, status model.VacancyState) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Joins("JOIN vacancy_statuses vs ON vs.unit_id = units.unit_id").
		Where("units.owner_id = ?", ownerID).
		Where("vs.status = ?", status).
		Preload("Property").
		Preload("VacancyStatus").
		Order("units.unit_id ASC").
		Find(&units).Error
	return units, err
}

func (r *unitRepo) ListUnlistedByOwner(ctx context.Context, ownerID string) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN vacancy_statuses vs ON vs.unit_id = units.unit_id").
		Where("units.owner_id = ?", ownerID).
		Where("vs.vacancy_status_id IS NULL").
		Preload("Property").
		Order("units.unit_id ASC").
		Find(&units).Error
	return units, err
}

func (r *unitRepo) CountByStatus(ctx context.Context, ownerID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Table("units").
		Select("COALESCE(vs.status, ?) AS status, COUNT(*) AS total", model.BucketUnlisted).
		Joins("LEFT JOIN vacancy_statuses vs ON vs.unit_id = units.unit_id").
		Where("units.owner_id = ?", ownerID).
		Group("1").
		Scan(&counts).Error
	return counts, err
}

// ListByStatuses spans all owners; used for the realtor market view.
func (r *unitRepo) ListByStatuses(ctx context.Context, statuses []model.VacancyState) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Joins("JOIN vacancy_statuses vs ON vs.unit_id = units.unit_id").
		Where("vs.status IN ?", statuses).
		Preload("Property").
		Preload("VacancyStatus").
		Order("vs.vacant_date ASC, units.unit_id ASC").
		Find(&units).Error
	return units, err
}
