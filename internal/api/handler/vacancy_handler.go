package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

// VacancyHandler per-unit status endpoints. The ledger trusts unit ids, so
// ownership is checked here through the unit registry first.
type VacancyHandler struct {
	unitSvc    service.UnitService
	vacancySvc service.VacancyService
}

// NewVacancyHandler creates a VacancyHandler.
func NewVacancyHandler(unitSvc service.UnitService, vacancySvc service.VacancyService) *VacancyHandler {
	return &VacancyHandler{unitSvc: unitSvc, vacancySvc: vacancySvc}
}

// GetStatus returns the unit's status, creating a NOT_SET row on first use.
// GET /api/v1/units/:id/status
func (h *VacancyHandler) GetStatus(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	unit, err := h.unitSvc.Authorize(ctx, c.Param("id"), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	st, err := h.vacancySvc.GetOrCreateStatus(ctx, unit.UnitID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, st)
}

// UpdateStatus
// PUT /api/v1/units/:id/status
func (h *VacancyHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	unit, err := h.unitSvc.Authorize(ctx, c.Param("id"), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	st, err := h.vacancySvc.UpdateStatus(ctx, unit.UnitID, req.Status, req.VacantDate)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, st)
}
