package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/model"
)

// PropertyRepository property data access
type PropertyRepository interface {
	Create(ctx context.Context, p *model.Property) error
	GetByID(ctx context.Context, id string) (*model.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Property, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Update(ctx context.Context, p *model.Property) error
	// Delete removes the property; units and their statuses go with it (FK cascade).
	Delete(ctx context.Context, id string) error
}

type propertyRepo struct {
	db *gorm.DB
}

// NewPropertyRepo creates a PropertyRepository.
func NewPropertyRepo(db *gorm.DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *model.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*model.Property, error) {
	var p model.Property
	err := r.db.WithContext(ctx).
		Where("property_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	var props []model.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, property_id ASC").
		Find(&props).Error
	return props, err
}

func (r *propertyRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Property{}).
		Where("owner_id = ?", ownerID).
		Count(&n).Error
	return n, err
}

// Update writes descriptive columns only; owner and unit_count are never touched here.
func (r *propertyRepo) Update(ctx context.Context, p *model.Property) error {
	return r.db.WithContext(ctx).
		Model(&model.Property{}).
		Where("property_id = ?", p.PropertyID).
		Updates(map[string]interface{}{
			"title":         p.Title,
			"client_code":   p.ClientCode,
			"building_code": p.BuildingCode,
			"landmark":      p.Landmark,
			"zone_no":       p.ZoneNo,
			"street_no":     p.StreetNo,
			"building_no":   p.BuildingNo,
			"updated_by":    p.UpdatedBy,
		}).Error
}

func (r *propertyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("property_id = ?", id).
		Delete(&model.Property{}).Error
}
