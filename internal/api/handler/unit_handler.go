package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

// UnitHandler unit registry endpoints
type UnitHandler struct {
	unitSvc service.UnitService
}

// NewUnitHandler creates a UnitHandler.
func NewUnitHandler(unitSvc service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

// ListUnits lists units of one property.
// GET /api/v1/properties/:id/units
func (h *UnitHandler) ListUnits(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.unitSvc.List(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateUnit
// POST /api/v1/properties/:id/units
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req dto.UnitAttributes
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	u, err := h.unitSvc.Create(c.Request.Context(), c.Param("id"), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, u)
}

// GetUnit
// GET /api/v1/units/:id
func (h *UnitHandler) GetUnit(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	u, err := h.unitSvc.Get(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, u)
}

// UpdateUnit
// PUT /api/v1/units/:id
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req dto.UnitAttributes
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	u, err := h.unitSvc.Update(c.Request.Context(), c.Param("id"), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, u)
}

// DeleteUnit removes the unit and its status row.
// DELETE /api/v1/units/:id
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.unitSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, nil)
}
