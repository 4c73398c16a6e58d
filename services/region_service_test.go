package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestRegionCRUD(t *testing.T) {
	setupTestDB(t)

	region, err := CreateRegion("Zona Norte")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	regions, err := ListRegions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regions) != 1 || regions[0].Name != "Zona Norte" {
		t.Fatalf("list = %+v, esperado apenas Zona Norte", regions)
	}

	updated, err := UpdateRegion(region.ID, "Zona Noroeste")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Zona Noroeste" {
		t.Errorf("nome = %q, esperado Zona Noroeste", updated.Name)
	}

	if err := DeleteRegion(region.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetRegion(region.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("get após delete: err = %v, esperado gorm.ErrRecordNotFound", err)
	}
}

func TestRegionNotFound(t *testing.T) {
	setupTestDB(t)

	if _, err := GetRegion(5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("get: err = %v", err)
	}
	if _, err := UpdateRegion(5, "X"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("update: err = %v", err)
	}
	if err := DeleteRegion(5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("delete: err = %v", err)
	}
}
