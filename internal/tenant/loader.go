package tenant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tripforge/backend/models"
)

// catalog is the on-disk shape of a tenant definition file
type catalog struct {
	Tenants []models.Tenant `yaml:"tenants"`
}

// LoadCatalog reads a YAML tenant catalog file and builds a registry from
// it. Tenants missing a sort order fall back to price ascending so the
// annotator always has a total order to apply.
func LoadCatalog(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tenant catalog: %w", err)
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse tenant catalog %s: %w", path, err)
	}
	if len(cat.Tenants) == 0 {
		return nil, fmt.Errorf("tenant catalog %s defines no tenants", path)
	}

	for i := range cat.Tenants {
		applyDefaults(&cat.Tenants[i])
	}

	reg, err := New(cat.Tenants)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant catalog %s: %w", path, err)
	}
	return reg, nil
}

// applyDefaults fills catalog-level fallbacks on a parsed tenant record
func applyDefaults(t *models.Tenant) {
	if t.FlightDefaults.SortOrder == "" {
		t.FlightDefaults.SortOrder = models.SortPriceAsc
	}
	if t.FlightDefaults.CabinClass == "" {
		t.FlightDefaults.CabinClass = "economy"
	}
	if t.StayDefaults.SortOrder == "" {
		t.StayDefaults.SortOrder = models.SortPriceAsc
	}
	if t.StayDefaults.Rooms == 0 {
		t.StayDefaults.Rooms = 1
	}
	if t.StayDefaults.Guests == 0 {
		t.StayDefaults.Guests = 2
	}
}
