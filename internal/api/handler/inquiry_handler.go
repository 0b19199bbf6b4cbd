package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/response"
)

// InquiryHandler rental request endpoints
type InquiryHandler struct {
	inquirySvc service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler.
func NewInquiryHandler(inquirySvc service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquirySvc: inquirySvc}
}

// SubmitInquiry is public; the router rate limits it.
// POST /api/v1/inquiries
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	inq, err := h.inquirySvc.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, inq)
}

// ListInquiries
// GET /api/v1/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	list, total, err := h.inquirySvc.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}
