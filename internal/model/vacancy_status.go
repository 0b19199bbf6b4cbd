package model

import (
	"strings"
	"time"
)

// VacancyState occupancy state of a unit.
type VacancyState string

const (
	StatusOccupied   VacancyState = "OCCUPIED"
	StatusVacant     VacancyState = "VACANT"
	StatusBooked     VacancyState = "BOOKED"
	StatusVacantSoon VacancyState = "VACANT_SOON"
	StatusClosed     VacancyState = "CLOSED"
	StatusNotSet     VacancyState = "NOT_SET"
)

// VacancyStates every recognised state.
var VacancyStates = []VacancyState{
	StatusOccupied, StatusVacant, StatusBooked, StatusVacantSoon, StatusClosed, StatusNotSet,
}

// BucketUnlisted labels a unit that has no status row at all.
const BucketUnlisted = "UNLISTED"

// Valid reports membership in the closed set.
func (s VacancyState) Valid() bool {
	for _, v := range VacancyStates {
		if s == v {
			return true
		}
	}
	return false
}

// ParseVacancyState normalises case and surrounding space.
func ParseVacancyState(raw string) (VacancyState, bool) {
	s := VacancyState(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// VacancyStatus the single current status of a unit — vacancy_statuses.
// unit_id is UNIQUE; the row is removed with its unit.
type VacancyStatus struct {
	VacancyStatusID string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vacancy_status_id"`
	UnitID          string       `gorm:"type:uuid;not null;uniqueIndex"                 json:"unit_id"`
	Status          VacancyState `gorm:"type:varchar(20);not null;default:'NOT_SET'"   json:"status"`
	VacantDate      time.Time    `gorm:"type:date;not null"                             json:"vacant_date"`
	Timestamps
}

func (VacancyStatus) TableName() string { return "vacancy_statuses" }
