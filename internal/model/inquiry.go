package model

import "time"

// Inquiry a public rental request — inquiries
type Inquiry struct {
	InquiryID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"inquiry_id"`
	Name              string    `gorm:"type:varchar(100);not null"                     json:"name"`
	MobileNo          string    `gorm:"type:varchar(20);not null"                      json:"mobile_no"`
	WhatsappNo        string    `gorm:"type:varchar(20);not null"                      json:"whatsapp_no"`
	Locations         string    `gorm:"type:varchar(100);not null;default:''"          json:"locations"`
	DateFrom          time.Time `gorm:"type:date;not null"                             json:"date_from"`
	DurationMonths    int       `gorm:"not null"                                       json:"duration_months"`
	PriceFrom         int64     `gorm:"not null"                                       json:"price_from"`
	PriceTo           int64     `gorm:"not null"                                       json:"price_to"`
	FurnishedType     string    `gorm:"type:varchar(32);not null;default:'ANY'"        json:"furnished_type"`
	PropertyType      string    `gorm:"type:varchar(32);not null;default:''"           json:"property_type"`
	PropertyTypeOther string    `gorm:"type:varchar(100);not null;default:''"          json:"property_type_other"`
	Notes             string    `gorm:"type:varchar(255);not null;default:''"          json:"notes"`
	Timestamps
}

func (Inquiry) TableName() string { return "inquiries" }
