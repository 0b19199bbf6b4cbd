package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
)

// ErrExportGenerateFail the workbook could not be written.
var ErrExportGenerateFail = errors.New("failed to generate xlsx file")

// ExportService owner dashboard export
type ExportService interface {
	// ExportUnits writes every unit of the owner to an xlsx workbook and
	// returns it with a suggested file name.
	ExportUnits(ctx context.Context, ownerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

var exportHeaders = []string{
	"Property", "Unit No", "Floor", "Category", "Price", "Bedrooms",
	"Bathrooms", "Furnished", "Status", "Vacant Date",
}

const exportSheet = "Units"

func (s *exportService) ExportUnits(ctx context.Context, ownerID string) (*bytes.Buffer, string, error) {
	units, err := s.repo.Unit.ListByOwner(ctx, ownerID, "")
	if err != nil {
		s.logger.Error("list units for export failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(exportSheet, "A", "A", 28)
	f.SetColWidth(exportSheet, "B", "J", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cellName, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)

	for i := range units {
		u := &units[i]
		row := i + 2

		title := ""
		if u.Property != nil {
			title = u.Property.Title
		}
		status, vacantDate := model.BucketUnlisted, ""
		if u.VacancyStatus != nil {
			status = string(u.VacancyStatus.Status)
			vacantDate = u.VacancyStatus.VacantDate.Format(vacantDateLayout)
		}

		values := []interface{}{
			title, u.UnitNumber, u.FloorNumber, string(u.Category), u.Price,
			u.Bedrooms, u.Bathrooms, string(u.Furnished), status, vacantDate,
		}
		cellName, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cellName, &values); err != nil {
			s.logger.Error("write export row failed", zap.Int("row", row), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("units-%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}
