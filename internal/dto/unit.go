package dto

import "github.com/boxstory/yk/internal/model"

// ── unit ──

// UnitAttributes descriptive unit fields. Numeric fields are non-negative;
// category and furnished are closed sets.
type UnitAttributes struct {
	UnitCode           string `json:"unit_code"            binding:"max=100"`
	UnitNumber         int    `json:"unit_number"          binding:"min=0"`
	FloorNumber        int    `json:"floor_number"         binding:"min=0"`
	Category           string `json:"category"             binding:"required,unit_category"`
	Price              int64  `json:"price"                binding:"min=0"`
	Bedrooms           int    `json:"bedrooms"             binding:"min=0"`
	Bathrooms          int    `json:"bathrooms"            binding:"min=0"`
	Furnished          string `json:"furnished"            binding:"required,furnishing"`
	FurnishedExtraInfo string `json:"furnished_extra_info" binding:"max=100"`
	Sqft               int    `json:"sqft"                 binding:"min=0"`
	Description        string `json:"description"          binding:"max=2000"`
}

// UnitResponse unit view with its property and current status
type UnitResponse struct {
	ID                 string          `json:"id"`
	PropertyID         string          `json:"property_id"`
	PropertyTitle      string          `json:"property_title,omitempty"`
	OwnerID            string          `json:"owner_id"`
	UnitCode           string          `json:"unit_code"`
	UnitNumber         int             `json:"unit_number"`
	FloorNumber        int             `json:"floor_number"`
	Category           string          `json:"category"`
	Price              int64           `json:"price"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	Furnished          string          `json:"furnished"`
	FurnishedExtraInfo string          `json:"furnished_extra_info"`
	Sqft               int             `json:"sqft"`
	Description        string          `json:"description"`
	Status             *StatusResponse `json:"status"` // null when unlisted
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// NewUnitResponse maps a unit model; Property and VacancyStatus are optional.
func NewUnitResponse(u *model.Unit) UnitResponse {
	resp := UnitResponse{
		ID:                 u.UnitID,
		PropertyID:         u.PropertyID,
		OwnerID:            u.OwnerID,
		UnitCode:           u.UnitCode,
		UnitNumber:         u.UnitNumber,
		FloorNumber:        u.FloorNumber,
		Category:           string(u.Category),
		Price:              u.Price,
		Bedrooms:           u.Bedrooms,
		Bathrooms:          u.Bathrooms,
		Furnished:          string(u.Furnished),
		FurnishedExtraInfo: u.FurnishedExtraInfo,
		Sqft:               u.Sqft,
		Description:        u.Description,
		CreatedAt:          u.CreatedAt.Format(timeLayout),
		UpdatedAt:          u.UpdatedAt.Format(timeLayout),
	}
	if u.Property != nil {
		resp.PropertyTitle = u.Property.Title
	}
	if u.VacancyStatus != nil {
		s := NewStatusResponse(u.VacancyStatus)
		resp.Status = &s
	}
	return resp
}

// NewUnitListResponse maps a slice, never returning nil.
func NewUnitListResponse(units []model.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for i := range units {
		out = append(out, NewUnitResponse(&units[i]))
	}
	return out
}
