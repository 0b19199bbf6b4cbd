package service

import (
	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/repository"
	"github.com/boxstory/yk/pkg/events"
	"github.com/boxstory/yk/pkg/jwt"
)

// Service aggregates every service.
type Service struct {
	Auth        AuthService
	Property    PropertyService
	Unit        UnitService
	Vacancy     VacancyService
	StatusQuery StatusQueryService
	Inquiry     InquiryService
	Export      ExportService
	Calendar    CalendarService
}

// NewService wires every service over one repository aggregate.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	publisher events.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, blacklist, logger),
		Property:    NewPropertyService(repo, logger),
		Unit:        NewUnitService(repo, logger),
		Vacancy:     NewVacancyService(repo, publisher, logger),
		StatusQuery: NewStatusQueryService(repo, logger),
		Inquiry:     NewInquiryService(repo, logger),
		Export:      NewExportService(repo, logger),
		Calendar:    NewCalendarService(repo, logger),
	}
}
