package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	apperr "github.com/boxstory/yk/pkg/errors"
)

// UnitService unit registry. Every operation is scoped to the calling owner.
type UnitService interface {
	// Create registers a unit under a property the caller owns. The new unit
	// has no vacancy status row.
	Create(ctx context.Context, propertyID, callerID string, attrs *dto.UnitAttributes) (*dto.UnitResponse, error)
	Get(ctx context.Context, unitID, callerID string) (*dto.UnitResponse, error)
	List(ctx context.Context, callerID, propertyID string) ([]dto.UnitResponse, error)
	// Update rewrites descriptive attributes. Property and owner never change.
	Update(ctx context.Context, unitID, callerID string, attrs *dto.UnitAttributes) (*dto.UnitResponse, error)
	Delete(ctx context.Context, unitID, callerID string) error
	// Authorize loads the unit and checks the caller owns it.
	Authorize(ctx context.Context, unitID, callerID string) (*model.Unit, error)
}

type unitService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUnitService creates a UnitService.
func NewUnitService(repo *repository.Repository, logger *zap.Logger) UnitService {
	return &unitService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *unitService) Create(ctx context.Context, propertyID, callerID string, attrs *dto.UnitAttributes) (*dto.UnitResponse, error) {
	prop, err := s.repo.Property.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("property", propertyID)
		}
		s.logger.Error("get property failed", zap.String("property_id", propertyID), zap.Error(err))
		return nil, err
	}
	if prop.OwnerID != callerID {
		return nil, apperr.Forbidden("property", propertyID)
	}
	if err := validateStruct(attrs); err != nil {
		return nil, err
	}

	unit := &model.Unit{
		PropertyID: prop.PropertyID,
		OwnerID:    prop.OwnerID,
	}
	applyUnitAttributes(unit, attrs)
	unit.CreatedBy = &callerID
	unit.UpdatedBy = &callerID

	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			return nil, apperr.NotFound("property", propertyID)
		}
		s.logger.Error("create unit failed", zap.String("property_id", propertyID), zap.Error(err))
		return nil, err
	}

	unit.Property = prop
	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

// ────────────────────── Get / List ──────────────────────

func (s *unitService) Get(ctx context.Context, unitID, callerID string) (*dto.UnitResponse, error) {
	unit, err := s.Authorize(ctx, unitID, callerID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

func (s *unitService) List(ctx context.Context, callerID, propertyID string) ([]dto.UnitResponse, error) {
	if propertyID != "" {
		prop, err := s.repo.Property.GetByID(ctx, propertyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("property", propertyID)
			}
			s.logger.Error("get property failed", zap.String("property_id", propertyID), zap.Error(err))
			return nil, err
		}
		if prop.OwnerID != callerID {
			return nil, apperr.Forbidden("property", propertyID)
		}
	}

	units, err := s.repo.Unit.ListByOwner(ctx, callerID, propertyID)
	if err != nil {
		s.logger.Error("list units failed", zap.String("owner_id", callerID), zap.Error(err))
		return nil, err
	}
	return dto.NewUnitListResponse(units), nil
}

// ────────────────────── Update ──────────────────────

func (s *unitService) Update(ctx context.Context, unitID, callerID string, attrs *dto.UnitAttributes) (*dto.UnitResponse, error) {
	unit, err := s.Authorize(ctx, unitID, callerID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(attrs); err != nil {
		return nil, err
	}

	applyUnitAttributes(unit, attrs)
	unit.UpdatedBy = &callerID

	if err := s.repo.Unit.Update(ctx, unit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("unit", unitID)
		}
		s.logger.Error("update unit failed", zap.String("unit_id", unitID), zap.Error(err))
		return nil, err
	}

	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *unitService) Delete(ctx context.Context, unitID, callerID string) error {
	unit, err := s.Authorize(ctx, unitID, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Unit.Delete(ctx, unit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("unit", unitID)
		}
		s.logger.Error("delete unit failed", zap.String("unit_id", unitID), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *unitService) Authorize(ctx context.Context, unitID, callerID string) (*model.Unit, error) {
	unit, err := s.repo.Unit.GetByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("unit", unitID)
		}
		s.logger.Error("get unit failed", zap.String("unit_id", unitID), zap.Error(err))
		return nil, err
	}
	if unit.OwnerID != callerID {
		return nil, apperr.Forbidden("unit", unitID)
	}
	return unit, nil
}

func applyUnitAttributes(u *model.Unit, a *dto.UnitAttributes) {
	u.UnitCode = a.UnitCode
	u.UnitNumber = a.UnitNumber
	u.FloorNumber = a.FloorNumber
	u.Category = model.UnitCategory(a.Category)
	u.Price = a.Price
	u.Bedrooms = a.Bedrooms
	u.Bathrooms = a.Bathrooms
	u.Furnished = model.Furnishing(a.Furnished)
	u.FurnishedExtraInfo = a.FurnishedExtraInfo
	u.Sqft = a.Sqft
	u.Description = a.Description
}
