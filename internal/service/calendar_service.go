package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
)

// CalendarService iCalendar feed of upcoming vacancies
type CalendarService interface {
	// VacancyCalendar renders one all-day event per VACANT or VACANT_SOON
	// unit of the owner, on its vacant date.
	VacancyCalendar(ctx context.Context, ownerID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger, now: time.Now}
}

var calendarStates = []model.VacancyState{model.StatusVacantSoon, model.StatusVacant}

func (s *calendarService) VacancyCalendar(ctx context.Context, ownerID string) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//yk//vacancy calendar//EN")
	cal.SetXWRCalName("Vacancies")

	stamp := s.now().UTC()
	for _, state := range calendarStates {
		units, err := s.repo.Unit.ListByOwnerAndStatus(ctx, ownerID, state)
		if err != nil {
			s.logger.Error("list units for calendar failed",
				zap.String("owner_id", ownerID),
				zap.String("status", string(state)),
				zap.Error(err),
			)
			return "", err
		}

		for i := range units {
			u := &units[i]
			if u.VacancyStatus == nil {
				continue
			}
			vs := u.VacancyStatus

			ev := cal.AddEvent(vs.VacancyStatusID + "@yk")
			ev.SetDtStampTime(stamp)
			ev.SetAllDayStartAt(vs.VacantDate)
			ev.SetAllDayEndAt(vs.VacantDate.AddDate(0, 0, 1))
			ev.SetSummary(calendarSummary(u))
		}
	}

	return cal.Serialize(), nil
}

func calendarSummary(u *model.Unit) string {
	title := u.PropertyID
	if u.Property != nil {
		title = u.Property.Title
	}
	return fmt.Sprintf("%s · %s unit %d", u.VacancyStatus.Status, title, u.UnitNumber)
}
