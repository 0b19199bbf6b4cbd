package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	apperr "github.com/boxstory/yk/pkg/errors"
)

// PropertyService building registry
type PropertyService interface {
	Create(ctx context.Context, callerID string, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	Get(ctx context.Context, id, callerID string) (*dto.PropertyResponse, error)
	List(ctx context.Context, callerID string) ([]dto.PropertyResponse, error)
	Update(ctx context.Context, id, callerID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	// Delete removes the property together with its units and their statuses.
	Delete(ctx context.Context, id, callerID string) error
}

type propertyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPropertyService creates a PropertyService.
func NewPropertyService(repo *repository.Repository, logger *zap.Logger) PropertyService {
	return &propertyService{repo: repo, logger: logger}
}

// newBuildingCode returns BLD- followed by 8 upper-case hex characters.
func newBuildingCode() string {
	return "BLD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *propertyService) Create(ctx context.Context, callerID string, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	p := &model.Property{
		OwnerID:      callerID,
		Title:        req.Title,
		ClientCode:   req.ClientCode,
		BuildingCode: req.BuildingCode,
		Landmark:     req.Landmark,
		ZoneNo:       req.ZoneNo,
		StreetNo:     req.StreetNo,
		BuildingNo:   req.BuildingNo,
	}
	if p.BuildingCode == "" {
		p.BuildingCode = newBuildingCode()
	}
	p.CreatedBy = &callerID
	p.UpdatedBy = &callerID

	if err := s.repo.Property.Create(ctx, p); err != nil {
		s.logger.Error("create property failed", zap.String("owner_id", callerID), zap.Error(err))
		return nil, err
	}

	resp := dto.NewPropertyResponse(p)
	return &resp, nil
}

func (s *propertyService) Get(ctx context.Context, id, callerID string) (*dto.PropertyResponse, error) {
	p, err := s.authorize(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	return &resp, nil
}

func (s *propertyService) List(ctx context.Context, callerID string) ([]dto.PropertyResponse, error) {
	props, err := s.repo.Property.ListByOwner(ctx, callerID)
	if err != nil {
		s.logger.Error("list properties failed", zap.String("owner_id", callerID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PropertyResponse, 0, len(props))
	for i := range props {
		result = append(result, dto.NewPropertyResponse(&props[i]))
	}
	return result, nil
}

func (s *propertyService) Update(ctx context.Context, id, callerID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := s.authorize(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.ClientCode != nil {
		p.ClientCode = *req.ClientCode
	}
	if req.BuildingCode != nil {
		p.BuildingCode = *req.BuildingCode
	}
	if req.Landmark != nil {
		p.Landmark = *req.Landmark
	}
	if req.ZoneNo != nil {
		p.ZoneNo = *req.ZoneNo
	}
	if req.StreetNo != nil {
		p.StreetNo = *req.StreetNo
	}
	if req.BuildingNo != nil {
		p.BuildingNo = *req.BuildingNo
	}
	p.UpdatedBy = &callerID

	if err := s.repo.Property.Update(ctx, p); err != nil {
		s.logger.Error("update property failed", zap.String("property_id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.NewPropertyResponse(p)
	return &resp, nil
}

func (s *propertyService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.authorize(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repo.Property.Delete(ctx, id); err != nil {
		s.logger.Error("delete property failed", zap.String("property_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *propertyService) authorize(ctx context.Context, id, callerID string) (*model.Property, error) {
	p, err := s.repo.Property.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("property", id)
		}
		s.logger.Error("get property failed", zap.String("property_id", id), zap.Error(err))
		return nil, err
	}
	if p.OwnerID != callerID {
		return nil, apperr.Forbidden("property", id)
	}
	return p, nil
}
