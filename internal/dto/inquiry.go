package dto

import "github.com/boxstory/yk/internal/model"

// ── inquiry ──

// CreateInquiryRequest public rental request
type CreateInquiryRequest struct {
	Name              string `json:"name"                binding:"required,max=100"`
	MobileNo          string `json:"mobile_no"           binding:"required,max=20"`
	WhatsappNo        string `json:"whatsapp_no"         binding:"required,whatsapp_qa"`
	Locations         string `json:"locations"           binding:"max=100"`
	DateFrom          string `json:"date_from"           binding:"required,datetime=2006-01-02"`
	DurationMonths    int    `json:"duration_months"     binding:"required,min=1,max=120"`
	PriceFrom         int64  `json:"price_from"          binding:"min=0"`
	PriceTo           int64  `json:"price_to"            binding:"gtefield=PriceFrom"`
	FurnishedType     string `json:"furnished_type"      binding:"omitempty,inquiry_furnishing"`
	PropertyType      string `json:"property_type"       binding:"omitempty,inquiry_property_type"`
	PropertyTypeOther string `json:"property_type_other" binding:"max=100"`
	Notes             string `json:"notes"               binding:"max=255"`
}

// InquiryResponse inquiry view
type InquiryResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MobileNo          string `json:"mobile_no"`
	WhatsappNo        string `json:"whatsapp_no"`
	Locations         string `json:"locations"`
	DateFrom          string `json:"date_from"`
	DurationMonths    int    `json:"duration_months"`
	PriceFrom         int64  `json:"price_from"`
	PriceTo           int64  `json:"price_to"`
	FurnishedType     string `json:"furnished_type"`
	PropertyType      string `json:"property_type"`
	PropertyTypeOther string `json:"property_type_other"`
	Notes             string `json:"notes"`
	CreatedAt         string `json:"created_at"`
}

// NewInquiryResponse maps an inquiry model.
func NewInquiryResponse(inq *model.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:                inq.InquiryID,
		Name:              inq.Name,
		MobileNo:          inq.MobileNo,
		WhatsappNo:        inq.WhatsappNo,
		Locations:         inq.Locations,
		DateFrom:          inq.DateFrom.Format(dateLayout),
		DurationMonths:    inq.DurationMonths,
		PriceFrom:         inq.PriceFrom,
		PriceTo:           inq.PriceTo,
		FurnishedType:     inq.FurnishedType,
		PropertyType:      inq.PropertyType,
		PropertyTypeOther: inq.PropertyTypeOther,
		Notes:             inq.Notes,
		CreatedAt:         inq.CreatedAt.Format(timeLayout),
	}
}
