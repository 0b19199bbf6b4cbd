package dto

import "github.com/boxstory/yk/internal/model"

// ── property ──

// CreatePropertyRequest new building
type CreatePropertyRequest struct {
	Title        string `json:"title"         binding:"required,min=1,max=100"`
	ClientCode   string `json:"client_code"   binding:"required,max=100"`
	BuildingCode string `json:"building_code" binding:"omitempty,max=100"`
	Landmark     string `json:"landmark"      binding:"omitempty,max=100"`
	ZoneNo       int    `json:"zone_no"       binding:"min=0"`
	StreetNo     int    `json:"street_no"     binding:"min=0"`
	BuildingNo   int    `json:"building_no"   binding:"min=0"`
}

// UpdatePropertyRequest partial update; nil fields are left alone
type UpdatePropertyRequest struct {
	Title        *string `json:"title"         binding:"omitempty,min=1,max=100"`
	ClientCode   *string `json:"client_code"   binding:"omitempty,min=1,max=100"`
	BuildingCode *string `json:"building_code" binding:"omitempty,min=1,max=100"`
	Landmark     *string `json:"landmark"      binding:"omitempty,max=100"`
	ZoneNo       *int    `json:"zone_no"       binding:"omitempty,min=0"`
	StreetNo     *int    `json:"street_no"     binding:"omitempty,min=0"`
	BuildingNo   *int    `json:"building_no"   binding:"omitempty,min=0"`
}

// PropertyResponse building view
type PropertyResponse struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	Title        string `json:"title"`
	ClientCode   string `json:"client_code"`
	BuildingCode string `json:"building_code"`
	Landmark     string `json:"landmark"`
	ZoneNo       int    `json:"zone_no"`
	StreetNo     int    `json:"street_no"`
	BuildingNo   int    `json:"building_no"`
	UnitCount    int    `json:"unit_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// NewPropertyResponse maps a property model.
func NewPropertyResponse(p *model.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.PropertyID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		ClientCode:   p.ClientCode,
		BuildingCode: p.BuildingCode,
		Landmark:     p.Landmark,
		ZoneNo:       p.ZoneNo,
		StreetNo:     p.StreetNo,
		BuildingNo:   p.BuildingNo,
		UnitCount:    p.UnitCount,
		CreatedAt:    p.CreatedAt.Format(timeLayout),
		UpdatedAt:    p.UpdatedAt.Format(timeLayout),
	}
}
