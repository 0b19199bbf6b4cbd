package model

// Property a building owned by a landlord — properties
type Property struct {
	PropertyID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"property_id"`
	OwnerID      string `gorm:"type:uuid;not null;index"                       json:"owner_id"`
	Title        string `gorm:"type:varchar(100);not null"                     json:"title"`
	ClientCode   string `gorm:"type:varchar(100);not null"                     json:"client_code"`
	BuildingCode string `gorm:"type:varchar(100);not null"                     json:"building_code"`
	Landmark     string `gorm:"type:varchar(100);not null;default:''"          json:"landmark"`
	ZoneNo       int    `gorm:"not null;default:0"                             json:"zone_no"`
	StreetNo     int    `gorm:"not null;default:0"                             json:"street_no"`
	BuildingNo   int    `gorm:"not null;default:0"                             json:"building_no"`
	UnitCount    int    `gorm:"not null;default:0"                             json:"unit_count"` // kept in step with units by the unit repository
	BaseModel
}

func (Property) TableName() string { return "properties" }
