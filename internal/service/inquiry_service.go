package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
)

// InquiryService public rental requests
type InquiryService interface {
	Submit(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
	// List newest first.
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.InquiryResponse, int64, error)
}

type inquiryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInquiryService creates an InquiryService.
func NewInquiryService(repo *repository.Repository, logger *zap.Logger) InquiryService {
	return &inquiryService{repo: repo, logger: logger}
}

func (s *inquiryService) Submit(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	// format already checked by the datetime rule
	dateFrom, _ := time.Parse(vacantDateLayout, req.DateFrom)

	furnished := req.FurnishedType
	if furnished == "" {
		furnished = "ANY"
	}

	inq := &model.Inquiry{
		Name:              req.Name,
		MobileNo:          req.MobileNo,
		WhatsappNo:        req.WhatsappNo,
		Locations:         req.Locations,
		DateFrom:          dateFrom,
		DurationMonths:    req.DurationMonths,
		PriceFrom:         req.PriceFrom,
		PriceTo:           req.PriceTo,
		FurnishedType:     furnished,
		PropertyType:      req.PropertyType,
		PropertyTypeOther: req.PropertyTypeOther,
		Notes:             req.Notes,
	}

	if err := s.repo.Inquiry.Create(ctx, inq); err != nil {
		s.logger.Error("create inquiry failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("inquiry received",
		zap.String("inquiry_id", inq.InquiryID),
		zap.String("property_type", inq.PropertyType),
	)
	resp := dto.NewInquiryResponse(inq)
	return &resp, nil
}

func (s *inquiryService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.InquiryResponse, int64, error) {
	list, total, err := s.repo.Inquiry.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("list inquiries failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InquiryResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewInquiryResponse(&list[i]))
	}
	return result, total, nil
}
