package repository

import "gorm.io/gorm"

// Repository aggregates every repository.
type Repository struct {
	User          UserRepository
	Property      PropertyRepository
	Unit          UnitRepository
	VacancyStatus VacancyStatusRepository
	Inquiry       InquiryRepository
}

// NewRepository builds the GORM-backed aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Property:      NewPropertyRepo(db),
		Unit:          NewUnitRepo(db),
		VacancyStatus: NewVacancyStatusRepo(db),
		Inquiry:       NewInquiryRepo(db),
	}
}
