package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// DashboardHandler owner-scoped status views and downloads
type DashboardHandler struct {
	querySvc    service.StatusQueryService
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(
	querySvc service.StatusQueryService,
	exportSvc service.ExportService,
	calendarSvc service.CalendarService,
) *DashboardHandler {
	return &DashboardHandler{querySvc: querySvc, exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// Summary bucket counts
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	summary, err := h.querySvc.Summary(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, summary)
}

// Vacant GET /api/v1/dashboard/vacant
func (h *DashboardHandler) Vacant(c *gin.Context) {
	h.list(c, h.querySvc.ListVacant)
}

// VacantSoon GET /api/v1/dashboard/vacant-soon
func (h *DashboardHandler) VacantSoon(c *gin.Context) {
	h.list(c, h.querySvc.ListVacantSoon)
}

// Occupied GET /api/v1/dashboard/occupied
func (h *DashboardHandler) Occupied(c *gin.Context) {
	h.list(c, h.querySvc.ListOccupied)
}

// Unlisted units without a status row
// GET /api/v1/dashboard/unlisted
func (h *DashboardHandler) Unlisted(c *gin.Context) {
	h.list(c, h.querySvc.ListUnlisted)
}

// ByStatus GET /api/v1/dashboard/status/:status
func (h *DashboardHandler) ByStatus(c *gin.Context) {
	status := c.Param("status")
	h.list(c, func(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
		return h.querySvc.ListByStatus(ctx, ownerID, status)
	})
}

func (h *DashboardHandler) list(c *gin.Context, fetch func(ctx context.Context, ownerID string) ([]dto.UnitResponse, error)) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := fetch(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list, "total": len(list)})
}

// Export downloads the owner's units as a workbook.
// GET /api/v1/dashboard/export
func (h *DashboardHandler) Export(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportUnits(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, service.ErrExportGenerateFail) {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "failed to generate export")
			return
		}
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Calendar iCalendar feed of vacant dates
// GET /api/v1/dashboard/calendar.ics
func (h *DashboardHandler) Calendar(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	body, err := h.calendarSvc.VacancyCalendar(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment("vacancies.ics"))
	c.Data(http.StatusOK, icsContentType, []byte(body))
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename))
}
