//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/internal/repository"
	"github.com/boxstory/yk/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=yk password=yk_password dbname=yk_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "get sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupOwnedUnit creates a landlord, one property and one unit, returning a cleanup func.
func setupOwnedUnit(t *testing.T) (*model.User, *model.Property, *model.Unit, func()) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	user := &model.User{
		Name:         "Landlord",
		Email:        fmt.Sprintf("landlord%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
		Role:         model.RoleLandlord,
		IsBusiness:   true,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	prop := &model.Property{
		OwnerID:      user.UserID,
		Title:        "Tower A",
		ClientCode:   "C-1",
		BuildingCode: "BLD-TEST",
	}
	if err := repo.Property.Create(ctx, prop); err != nil {
		t.Fatalf("create property: %v", err)
	}

	unit := &model.Unit{
		PropertyID: prop.PropertyID,
		OwnerID:    user.UserID,
		UnitNumber: 101,
		Category:   model.Category2BHK,
		Price:      5500,
		Bedrooms:   2,
		Bathrooms:  2,
		Furnished:  model.SemiFurnished,
	}
	if err := repo.Unit.Create(ctx, unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	cleanup := func() {
		testDB.Where("user_id = ?", user.UserID).Delete(&model.User{})
	}
	return user, prop, unit, cleanup
}

// ═══════════════════════════════════════════════════════════
// Vacancy ledger
// ═══════════════════════════════════════════════════════════

func TestVacancyStatus_ConcurrentGetOrCreate_SingleRow(t *testing.T) {
	_, _, unit, cleanup := setupOwnedUnit(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	vacantDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	const callers = 16
	var wg sync.WaitGroup
	ids := make([]string, callers)
	created := make([]bool, callers)
	errs := make([]error, callers)

	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			row, c, err := repo.VacancyStatus.GetOrCreate(ctx, unit.UnitID, vacantDate)
			errs[i] = err
			created[i] = c
			if row != nil {
				ids[i] = row.VacancyStatusID
			}
		}(i)
	}
	close(start)
	wg.Wait()

	creators := 0
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if ids[i] != ids[0] {
			t.Errorf("caller %d got row %s, caller 0 got %s", i, ids[i], ids[0])
		}
		if created[i] {
			creators++
		}
	}
	if creators != 1 {
		t.Errorf("expected exactly one creator, got %d", creators)
	}

	var n int64
	testDB.Model(&model.VacancyStatus{}).Where("unit_id = ?", unit.UnitID).Count(&n)
	if n != 1 {
		t.Errorf("expected 1 vacancy_statuses row, got %d", n)
	}
}

func TestVacancyStatus_GetOrCreate_MissingUnit(t *testing.T) {
	repo := repository.NewRepository(testDB)

	_, _, err := repo.VacancyStatus.GetOrCreate(context.Background(), "00000000-0000-0000-0000-000000000000", time.Now())
	if !errors.Is(err, repository.ErrReferenceMissing) {
		t.Errorf("expected ErrReferenceMissing, got %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Unit registry
// ═══════════════════════════════════════════════════════════

func TestUnit_DeleteCascadesStatusAndDecrementsCount(t *testing.T) {
	_, prop, unit, cleanup := setupOwnedUnit(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	got, err := repo.Property.GetByID(ctx, prop.PropertyID)
	if err != nil {
		t.Fatalf("get property: %v", err)
	}
	if got.UnitCount != 1 {
		t.Fatalf("expected unit_count=1 after create, got %d", got.UnitCount)
	}

	if _, _, err := repo.VacancyStatus.GetOrCreate(ctx, unit.UnitID, time.Now()); err != nil {
		t.Fatalf("get-or-create: %v", err)
	}

	if err := repo.Unit.Delete(ctx, unit); err != nil {
		t.Fatalf("delete unit: %v", err)
	}

	if _, err := repo.VacancyStatus.GetByUnitID(ctx, unit.UnitID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected status row to cascade, got %v", err)
	}
	got, _ = repo.Property.GetByID(ctx, prop.PropertyID)
	if got.UnitCount != 0 {
		t.Errorf("expected unit_count=0 after delete, got %d", got.UnitCount)
	}
}

func TestUnit_StatusBuckets(t *testing.T) {
	user, _, unit, cleanup := setupOwnedUnit(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	unlisted, err := repo.Unit.ListUnlistedByOwner(ctx, user.UserID)
	if err != nil {
		t.Fatalf("list unlisted: %v", err)
	}
	if len(unlisted) != 1 || unlisted[0].UnitID != unit.UnitID {
		t.Fatalf("expected the unit to be unlisted, got %+v", unlisted)
	}

	if _, _, err := repo.VacancyStatus.GetOrCreate(ctx, unit.UnitID, time.Now()); err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	if err := repo.VacancyStatus.UpdateStatus(ctx, unit.UnitID, model.StatusVacant, time.Now()); err != nil {
		t.Fatalf("update status: %v", err)
	}

	unlisted, _ = repo.Unit.ListUnlistedByOwner(ctx, user.UserID)
	if len(unlisted) != 0 {
		t.Errorf("expected no unlisted units, got %d", len(unlisted))
	}
	vacant, _ := repo.Unit.ListByOwnerAndStatus(ctx, user.UserID, model.StatusVacant)
	if len(vacant) != 1 {
		t.Errorf("expected 1 vacant unit, got %d", len(vacant))
	}
	occupied, _ := repo.Unit.ListByOwnerAndStatus(ctx, user.UserID, model.StatusOccupied)
	if len(occupied) != 0 {
		t.Errorf("expected 0 occupied units, got %d", len(occupied))
	}
}
