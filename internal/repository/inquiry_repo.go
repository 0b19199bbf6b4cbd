package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/boxstory/yk/internal/model"
)

// InquiryRepository inquiry data access
type InquiryRepository interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	List(ctx context.Context, offset, limit int) ([]model.Inquiry, int64, error)
}

type inquiryRepo struct {
	db *gorm.DB
}

// NewInquiryRepo creates an InquiryRepository.
func NewInquiryRepo(db *gorm.DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryRepo) List(ctx context.Context, offset, limit int) ([]model.Inquiry, int64, error) {
	var list []model.Inquiry
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Inquiry{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}
