package handler

import "github.com/boxstory/yk/internal/service"

// Handler aggregates every handler.
type Handler struct {
	Auth      *AuthHandler
	Property  *PropertyHandler
	Unit      *UnitHandler
	Vacancy   *VacancyHandler
	Dashboard *DashboardHandler
	Market    *MarketHandler
	Inquiry   *InquiryHandler
}

// NewHandler builds every handler over the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Property:  NewPropertyHandler(svc.Property),
		Unit:      NewUnitHandler(svc.Unit),
		Vacancy:   NewVacancyHandler(svc.Unit, svc.Vacancy),
		Dashboard: NewDashboardHandler(svc.StatusQuery, svc.Export, svc.Calendar),
		Market:    NewMarketHandler(svc.StatusQuery),
		Inquiry:   NewInquiryHandler(svc.Inquiry),
	}
}
