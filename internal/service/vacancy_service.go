package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	apperr "github.com/boxstory/yk/pkg/errors"
	"github.com/boxstory/yk/pkg/events"
)

const vacantDateLayout = "2006-01-02"

// VacancyService the per-unit vacancy ledger.
//
// It receives only unit ids; callers prove ownership first (see
// UnitService.Authorize). There is no transition graph: any status may
// follow any other.
type VacancyService interface {
	// GetOrCreateStatus returns the unit's status row, creating it as
	// NOT_SET dated the first of next month when absent.
	GetOrCreateStatus(ctx context.Context, unitID string) (*dto.StatusResponse, error)
	// UpdateStatus sets status and vacant date. Input is validated before
	// anything is written.
	UpdateStatus(ctx context.Context, unitID, status, vacantDate string) (*dto.StatusResponse, error)
}

type vacancyService struct {
	repo      *repository.Repository
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewVacancyService creates a VacancyService on the wall clock.
func NewVacancyService(repo *repository.Repository, publisher events.Publisher, logger *zap.Logger) VacancyService {
	return NewVacancyServiceWithClock(repo, publisher, logger, time.Now)
}

// NewVacancyServiceWithClock creates a VacancyService with an injected clock.
func NewVacancyServiceWithClock(repo *repository.Repository, publisher events.Publisher, logger *zap.Logger, now func() time.Time) VacancyService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &vacancyService{repo: repo, publisher: publisher, logger: logger, now: now}
}

// DefaultVacantDate is the first day of the month after now; December rolls
// into January of the next year.
func DefaultVacantDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// ────────────────────── GetOrCreateStatus ──────────────────────

func (s *vacancyService) GetOrCreateStatus(ctx context.Context, unitID string) (*dto.StatusResponse, error) {
	row, err := s.getOrCreate(ctx, unitID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStatusResponse(row)
	return &resp, nil
}

func (s *vacancyService) getOrCreate(ctx context.Context, unitID string) (*model.VacancyStatus, error) {
	row, created, err := s.repo.VacancyStatus.GetOrCreate(ctx, unitID, DefaultVacantDate(s.now()))
	if err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("unit", unitID)
		}
		s.logger.Error("get or create vacancy status failed", zap.String("unit_id", unitID), zap.Error(err))
		return nil, err
	}
	if created {
		s.logger.Info("vacancy status created",
			zap.String("unit_id", unitID),
			zap.String("vacant_date", row.VacantDate.Format(vacantDateLayout)),
		)
	}
	return row, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *vacancyService) UpdateStatus(ctx context.Context, unitID, status, vacantDate string) (*dto.StatusResponse, error) {
	newStatus, date, err := parseStatusUpdate(status, vacantDate)
	if err != nil {
		return nil, err
	}

	row, err := s.getOrCreate(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.VacancyStatus.UpdateStatus(ctx, unitID, newStatus, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// unit deleted between get-or-create and update; the row cascaded
			return nil, apperr.NotFound("unit", unitID)
		}
		s.logger.Error("update vacancy status failed",
			zap.String("unit_id", unitID),
			zap.String("status", string(newStatus)),
			zap.Error(err),
		)
		return nil, err
	}

	previous := row.Status
	row.Status = newStatus
	row.VacantDate = date
	row.UpdatedAt = s.now()

	s.logger.Info("vacancy status updated",
		zap.String("unit_id", unitID),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)),
	)
	s.publishStatusChanged(ctx, row)

	resp := dto.NewStatusResponse(row)
	return &resp, nil
}

// parseStatusUpdate validates both inputs and reports every bad field.
func parseStatusUpdate(status, vacantDate string) (model.VacancyState, time.Time, error) {
	var verr apperr.ValidationError

	parsed, ok := model.ParseVacancyState(status)
	if !ok {
		verr.Fields = append(verr.Fields, apperr.FieldError{
			Field:   "status",
			Message: "must be one of " + joinStates(model.VacancyStates),
		})
	}

	date, err := time.Parse(vacantDateLayout, strings.TrimSpace(vacantDate))
	if err != nil {
		verr.Fields = append(verr.Fields, apperr.FieldError{
			Field:   "vacant_date",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	if len(verr.Fields) > 0 {
		return "", time.Time{}, &verr
	}
	return parsed, date, nil
}

// publishStatusChanged is best effort: a broker outage never fails the update.
func (s *vacancyService) publishStatusChanged(ctx context.Context, row *model.VacancyStatus) {
	evt := events.StatusChanged{
		UnitID:     row.UnitID,
		Status:     string(row.Status),
		VacantDate: row.VacantDate.Format(vacantDateLayout),
		OccurredAt: row.UpdatedAt,
	}
	if unit, err := s.repo.Unit.GetByID(ctx, row.UnitID); err == nil {
		evt.PropertyID = unit.PropertyID
		evt.OwnerID = unit.OwnerID
	}

	if err := s.publisher.PublishStatusChanged(ctx, evt); err != nil {
		s.logger.Warn("publish status change failed", zap.String("unit_id", row.UnitID), zap.Error(err))
	}
}

func joinStates(states []model.VacancyState) string {
	parts := make([]string, len(states))
	for i, st := range states {
		parts[i] = string(st)
	}
	return strings.Join(parts, ", ")
}
