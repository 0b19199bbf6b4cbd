package model

// UnitCategory closed set of unit types.
type UnitCategory string

const (
	CategoryBachelorBedspace UnitCategory = "BACHELOR_BEDSPACE"
	CategorySingleRoom       UnitCategory = "SINGLE_ROOM"
	CategoryStudio           UnitCategory = "STUDIO"
	Category1BHK             UnitCategory = "1BHK"
	Category2BHK             UnitCategory = "2BHK"
	Category3BHK             UnitCategory = "3BHK"
	Category4BHK             UnitCategory = "4BHK"
	Category5BHK             UnitCategory = "5BHK"
	Category5PlusBHK         UnitCategory = "5+BHK"
	CategoryVilla            UnitCategory = "VILLA"
	CategoryApartment        UnitCategory = "APARTMENT"
	CategoryCampsite         UnitCategory = "CAMPSITE"
	CategoryOffice           UnitCategory = "OFFICE"
	CategoryShop             UnitCategory = "SHOP"
	CategoryStorage          UnitCategory = "STORAGE"
	CategoryOther            UnitCategory = "OTHER"
)

// UnitCategories in display order.
var UnitCategories = []UnitCategory{
	CategoryBachelorBedspace, CategorySingleRoom, CategoryStudio,
	Category1BHK, Category2BHK, Category3BHK, Category4BHK, Category5BHK, Category5PlusBHK,
	CategoryVilla, CategoryApartment, CategoryCampsite,
	CategoryOffice, CategoryShop, CategoryStorage, CategoryOther,
}

// Valid reports membership in the closed set.
func (c UnitCategory) Valid() bool {
	for _, v := range UnitCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Furnishing of a unit.
type Furnishing string

const (
	Furnished     Furnishing = "FURNISHED"
	SemiFurnished Furnishing = "SEMI_FURNISHED"
	Unfurnished   Furnishing = "UNFURNISHED"
)

// Valid reports membership in the closed set.
func (f Furnishing) Valid() bool {
	switch f {
	case Furnished, SemiFurnished, Unfurnished:
		return true
	}
	return false
}

// Unit a leasable space inside a property — units.
// PropertyID and OwnerID are fixed at creation.
type Unit struct {
	UnitID             string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"unit_id"`
	PropertyID         string       `gorm:"type:uuid;not null;index"                       json:"property_id"`
	OwnerID            string       `gorm:"type:uuid;not null;index"                       json:"owner_id"`
	UnitCode           string       `gorm:"type:varchar(100);not null;default:''"          json:"unit_code"`
	UnitNumber         int          `gorm:"not null;default:0"                             json:"unit_number"`
	FloorNumber        int          `gorm:"not null;default:0"                             json:"floor_number"`
	Category           UnitCategory `gorm:"type:varchar(32);not null;default:'STUDIO'"     json:"category"`
	Price              int64        `gorm:"not null"                                       json:"price"`
	Bedrooms           int          `gorm:"not null;default:1"                             json:"bedrooms"`
	Bathrooms          int          `gorm:"not null;default:1"                             json:"bathrooms"`
	Furnished          Furnishing   `gorm:"type:varchar(32);not null;default:'UNFURNISHED'" json:"furnished"`
	FurnishedExtraInfo string       `gorm:"type:varchar(100);not null;default:''"          json:"furnished_extra_info"`
	Sqft               int          `gorm:"not null;default:0"                             json:"sqft"`
	Description        string       `gorm:"type:text;not null;default:''"                  json:"description"`
	BaseModel

	Property      *Property      `gorm:"foreignKey:PropertyID;references:PropertyID" json:"property,omitempty"`
	VacancyStatus *VacancyStatus `gorm:"foreignKey:UnitID;references:UnitID"         json:"vacancy_status,omitempty"`
}

func (Unit) TableName() string { return "units" }
