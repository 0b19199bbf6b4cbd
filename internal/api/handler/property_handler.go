package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

// PropertyHandler building endpoints
type PropertyHandler struct {
	propertySvc service.PropertyService
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(propertySvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

// ListProperties
// GET /api/v1/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.propertySvc.List(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetProperty
// GET /api/v1/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	p, err := h.propertySvc.Get(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, p)
}

// CreateProperty
// POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	p, err := h.propertySvc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, p)
}

// UpdateProperty
// PUT /api/v1/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	p, err := h.propertySvc.Update(c.Request.Context(), c.Param("id"), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, p)
}

// DeleteProperty removes the building with its units.
// DELETE /api/v1/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.propertySvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, nil)
}
