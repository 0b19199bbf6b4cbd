package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/dto"
	"github.com/boxstory/yk/internal/model"
	apperr "github.com/boxstory/yk/pkg/errors"
)

func setupTestPropertyService() (PropertyService, *memStore) {
	store := newMemStore()
	return NewPropertyService(newTestRepository(store), zap.NewNop()), store
}

var buildingCodePattern = regexp.MustCompile(`^BLD-[0-9A-F]{8}$`)

func TestPropertyService_Create_GeneratesBuildingCode(t *testing.T) {
	svc, _ := setupTestPropertyService()

	got, err := svc.Create(context.Background(), "owner-1", &dto.CreatePropertyRequest{
		Title:      "Tower A",
		ClientCode: "C-77",
		ZoneNo:     25,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !buildingCodePattern.MatchString(got.BuildingCode) {
		t.Errorf("unexpected building code %q", got.BuildingCode)
	}
	if got.OwnerID != "owner-1" || got.UnitCount != 0 {
		t.Errorf("unexpected property: %+v", got)
	}
}

func TestPropertyService_Create_KeepsGivenBuildingCode(t *testing.T) {
	svc, _ := setupTestPropertyService()

	got, err := svc.Create(context.Background(), "owner-1", &dto.CreatePropertyRequest{
		Title:        "Tower A",
		ClientCode:   "C-77",
		BuildingCode: "DOHA-1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got.BuildingCode != "DOHA-1" {
		t.Errorf("expected DOHA-1, got %s", got.BuildingCode)
	}
}

func TestPropertyService_Create_RequiresClientCode(t *testing.T) {
	svc, store := setupTestPropertyService()

	_, err := svc.Create(context.Background(), "owner-1", &dto.CreatePropertyRequest{Title: "Tower A"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(store.properties) != 0 {
		t.Error("invalid property must not be stored")
	}
}

func TestPropertyService_Update_Partial(t *testing.T) {
	svc, store := setupTestPropertyService()
	prop := seedProperty(store, "owner-1", "Tower A")
	title := "Tower A (renovated)"

	got, err := svc.Update(context.Background(), prop.PropertyID, "owner-1", &dto.UpdatePropertyRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Title != title {
		t.Errorf("expected new title, got %s", got.Title)
	}
	if got.ClientCode != prop.ClientCode {
		t.Errorf("untouched fields must survive, got client_code %s", got.ClientCode)
	}
}

func TestPropertyService_OwnerChecks(t *testing.T) {
	svc, store := setupTestPropertyService()
	prop := seedProperty(store, "owner-1", "Tower A")
	ctx := context.Background()

	if _, err := svc.Get(ctx, prop.PropertyID, "owner-2"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Get: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, prop.PropertyID, "owner-2"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Delete: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, "ghost", "owner-1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
}

func TestPropertyService_Delete_CascadesUnits(t *testing.T) {
	svc, store := setupTestPropertyService()
	prop := seedProperty(store, "owner-1", "Tower A")
	unit := seedUnit(store, prop, 1)
	seedStatus(store, unit, model.StatusVacant, date(2025, time.May, 1))

	if err := svc.Delete(context.Background(), prop.PropertyID, "owner-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.units) != 0 || statusRowCount(store) != 0 {
		t.Errorf("units and statuses should cascade, left units=%d statuses=%d", len(store.units), statusRowCount(store))
	}
}

func TestPropertyService_List(t *testing.T) {
	svc, store := setupTestPropertyService()
	seedProperty(store, "owner-1", "Tower A")
	seedProperty(store, "owner-1", "Tower B")
	seedProperty(store, "owner-2", "Other")

	got, err := svc.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 properties, got %d", len(got))
	}
}
