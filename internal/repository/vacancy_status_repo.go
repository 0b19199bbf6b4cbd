package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/boxstory/yk/internal/model"
)

// VacancyStatusRepository ledger data access. One row per unit, enforced by
// the UNIQUE constraint on vacancy_statuses.unit_id.
type VacancyStatusRepository interface {
	// GetOrCreate returns the unit's row, inserting {NOT_SET, vacantDate} if
	// there is none. created reports whether this call inserted it.
	GetOrCreate(ctx context.Context, unitID string, vacantDate time.Time) (row *model.VacancyStatus, created bool, err error)
	GetByUnitID(ctx context.Context, unitID string) (*model.VacancyStatus, error)
	// UpdateStatus overwrites status and vacant_date on the existing row.
	UpdateStatus(ctx context.Context, unitID string, status model.VacancyState, vacantDate time.Time) error
}

type vacancyStatusRepo struct {
	db *gorm.DB
}

// NewVacancyStatusRepo creates a VacancyStatusRepository.
func NewVacancyStatusRepo(db *gorm.DB) VacancyStatusRepository {
	return &vacancyStatusRepo{db: db}
}

func (r *vacancyStatusRepo) GetOrCreate(ctx context.Context, unitID string, vacantDate time.Time) (*model.VacancyStatus, bool, error) {
	row := &model.VacancyStatus{
		UnitID:     unitID,
		Status:     model.StatusNotSet,
		VacantDate: vacantDate,
	}

	// INSERT ... ON CONFLICT (unit_id) DO NOTHING: concurrent first touches
	// resolve to a single row, the loser reads it back below.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unit_id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		switch {
		case isForeignKeyViolation(res.Error):
			return nil, false, ErrReferenceMissing
		case !isUniqueViolation(res.Error):
			return nil, false, res.Error
		}
	} else if res.RowsAffected == 1 {
		return row, true, nil
	}

	existing, err := r.GetByUnitID(ctx, unitID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *vacancyStatusRepo) GetByUnitID(ctx context.Context, unitID string) (*model.VacancyStatus, error) {
	var row model.VacancyStatus
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *vacancyStatusRepo) UpdateStatus(ctx context.Context, unitID string, status model.VacancyState, vacantDate time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.VacancyStatus{}).
		Where("unit_id = ?", unitID).
		Updates(map[string]interface{}{
			"status":      status,
			"vacant_date": vacantDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
