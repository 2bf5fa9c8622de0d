package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/backend/models"
)

func TestNew(t *testing.T) {
	t.Run("valid tenants", func(t *testing.T) {
		reg, err := New([]models.Tenant{
			{ID: "corp", Name: "Corp Travel", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
			{ID: "leisure", Name: "Leisure Co", EnabledVerticals: []models.Vertical{models.VerticalFlights, models.VerticalStays}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := New([]models.Tenant{
			{ID: "corp", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
			{ID: "corp", EnabledVerticals: []models.Vertical{models.VerticalStays}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate tenant id")
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		_, err := New([]models.Tenant{
			{ID: "", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
		})
		assert.Error(t, err)
	})

	t.Run("tenant with no verticals is rejected", func(t *testing.T) {
		_, err := New([]models.Tenant{
			{ID: "empty"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "enables no verticals")
	})
}

func TestRegistry_Get(t *testing.T) {
	reg, err := New([]models.Tenant{
		{ID: "corp", Name: "Corp Travel", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
	})
	require.NoError(t, err)

	record, ok := reg.Get("corp")
	require.True(t, ok)
	assert.Equal(t, "Corp Travel", record.Name)

	_, ok = reg.Get("unknown")
	assert.False(t, ok)
}

func TestRegistry_IDsAreSorted(t *testing.T) {
	reg, err := New([]models.Tenant{
		{ID: "zeta", EnabledVerticals: []models.Vertical{models.VerticalStays}},
		{ID: "alpha", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
		{ID: "mid", EnabledVerticals: []models.Vertical{models.VerticalFlights}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.IDs())
}
