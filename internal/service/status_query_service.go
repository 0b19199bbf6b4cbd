package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	apperr "github.com/boxstory/yk/pkg/errors"
)

// marketStates are the statuses realtors may browse across owners.
var marketStates = map[model.VacancyState]bool{
	model.StatusVacant:     true,
	model.StatusVacantSoon: true,
	model.StatusBooked:     true,
}

// StatusQueryService read-only dashboard views. Owner-scoped lists filter by
// owner first, then by status, ordered by unit id.
type StatusQueryService interface {
	ListVacantSoon(ctx context.Context, ownerID string) ([]dto.UnitResponse, error)
	ListVacant(ctx context.Context, ownerID string) ([]dto.UnitResponse, error)
	ListOccupied(ctx context.Context, ownerID string) ([]dto.UnitResponse, error)
	// ListUnlisted returns units that have no status row at all.
	ListUnlisted(ctx context.Context, ownerID string) ([]dto.UnitResponse, error)
	// ListByStatus accepts any status name or UNLISTED, case-insensitively.
	ListByStatus(ctx context.Context, ownerID, status string) ([]dto.UnitResponse, error)
	Summary(ctx context.Context, ownerID string) (*dto.DashboardSummary, error)
	// ListMarket lists VACANT, VACANT_SOON or BOOKED units of every owner.
	ListMarket(ctx context.Context, status string) ([]dto.UnitResponse, error)
}

type statusQueryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatusQueryService creates a StatusQueryService.
func NewStatusQueryService(repo *repository.Repository, logger *zap.Logger) StatusQueryService {
	return &statusQueryService{repo: repo, logger: logger}
}

func (s *statusQueryService) ListVacantSoon(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
	return s.listByState(ctx, ownerID, model.StatusVacantSoon)
}

func (s *statusQueryService) ListVacant(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
	return s.listByState(ctx, ownerID, model.StatusVacant)
}

func (s *statusQueryService) ListOccupied(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
	return s.listByState(ctx, ownerID, model.StatusOccupied)
}

func (s *statusQueryService) ListUnlisted(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
	units, err := s.repo.Unit.ListUnlistedByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list unlisted units failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return dto.NewUnitListResponse(units), nil
}

func (s *statusQueryService) ListByStatus(ctx context.Context, ownerID, status string) ([]dto.UnitResponse, error) {
	state, ok := model.ParseVacancyState(status)
	if !ok {
		if string(state) == model.BucketUnlisted {
			return s.ListUnlisted(ctx, ownerID)
		}
		return nil, apperr.NewValidation("status", "must be one of "+joinStates(model.VacancyStates)+", "+model.BucketUnlisted)
	}
	return s.listByState(ctx, ownerID, state)
}

func (s *statusQueryService) listByState(ctx context.Context, ownerID string, state model.VacancyState) ([]dto.UnitResponse, error) {
	units, err := s.repo.Unit.ListByOwnerAndStatus(ctx, ownerID, state)
	if err != nil {
		s.logger.Error("list units by status failed",
			zap.String("owner_id", ownerID),
			zap.String("status", string(state)),
			zap.Error(err),
		)
		return nil, err
	}
	return dto.NewUnitListResponse(units), nil
}

// ────────────────────── Summary ──────────────────────

func (s *statusQueryService) Summary(ctx context.Context, ownerID string) (*dto.DashboardSummary, error) {
	counts, err := s.repo.Unit.CountByStatus(ctx, ownerID)
	if err != nil {
		s.logger.Error("count units by status failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	properties, err := s.repo.Property.CountByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("count properties failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}

	summary := &dto.DashboardSummary{
		Properties: properties,
		Buckets:    make(map[string]int64, len(model.VacancyStates)+1),
	}
	for _, st := range model.VacancyStates {
		summary.Buckets[string(st)] = 0
	}
	summary.Buckets[model.BucketUnlisted] = 0

	for _, c := range counts {
		summary.Buckets[c.Status] += c.Total
		summary.Units += c.Total
	}
	return summary, nil
}

// ────────────────────── Market ──────────────────────

func (s *statusQueryService) ListMarket(ctx context.Context, status string) ([]dto.UnitResponse, error) {
	state, ok := model.ParseVacancyState(status)
	if !ok || !marketStates[state] {
		return nil, apperr.NewValidation("status", "must be VACANT, VACANT_SOON or BOOKED")
	}

	units, err := s.repo.Unit.ListByStatuses(ctx, []model.VacancyState{state})
	if err != nil {
		s.logger.Error("list market units failed", zap.String("status", string(state)), zap.Error(err))
		return nil, err
	}
	return dto.NewUnitListResponse(units), nil
}
