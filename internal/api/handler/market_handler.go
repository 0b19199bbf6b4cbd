package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

// MarketHandler cross-owner listing for realtors
type MarketHandler struct {
	querySvc service.StatusQueryService
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(querySvc service.StatusQueryService) *MarketHandler {
	return &MarketHandler{querySvc: querySvc}
}

// ListMarket
// GET /api/v1/market?status=VACANT
func (h *MarketHandler) ListMarket(c *gin.Context) {
	var req dto.MarketRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	list, err := h.querySvc.ListMarket(c.Request.Context(), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list, "total": len(list)})
}
