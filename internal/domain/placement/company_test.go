package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates running drive", func(t *testing.T) {
		company, err := NewCompany("Infosys", 2026)

		require.NoError(t, err)
		assert.Equal(t, "Infosys", company.CompanyName)
		assert.Equal(t, 2026, company.Year)
		assert.Equal(t, CompanyStatusRunning, company.Status)
		assert.True(t, company.IsRunning())
	})

	t.Run("fails with blank name", func(t *testing.T) {
		_, err := NewCompany("  ", 2026)

		assert.Error(t, err)
	})

	t.Run("fails with non-positive year", func(t *testing.T) {
		_, err := NewCompany("Infosys", 0)

		assert.Error(t, err)
	})
}

func TestCompany_Counters(t *testing.T) {
	t.Run("records applications and placements", func(t *testing.T) {
		company, _ := NewCompany("Infosys", 2026)

		company.RecordApplication()
		company.RecordApplication()
		company.RecordPlacement()

		assert.Equal(t, 2, company.TotalApplied)
		assert.Equal(t, 1, company.TotalPlaced)
	})

	t.Run("removals floor at zero", func(t *testing.T) {
		company, _ := NewCompany("Infosys", 2026)

		company.RemoveApplication()
		company.RemovePlacement()

		assert.Equal(t, 0, company.TotalApplied)
		assert.Equal(t, 0, company.TotalPlaced)
	})
}

func TestCompany_Complete(t *testing.T) {
	company, _ := NewCompany("Infosys", 2026)

	require.NoError(t, company.Complete())
	assert.Equal(t, CompanyStatusCompleted, company.Status)
	assert.False(t, company.IsRunning())

	assert.Error(t, company.Complete())
}

func TestYear_Counters(t *testing.T) {
	t.Run("records and removes participation", func(t *testing.T) {
		year, err := NewYear(2026)
		require.NoError(t, err)

		year.RecordParticipation()
		year.RecordPlacement()
		year.RemoveParticipation()
		year.RemovePlacements(3)

		assert.Equal(t, 0, year.TotalStudentsParticipated)
		assert.Equal(t, 0, year.TotalPlaced)
	})

	t.Run("rejects non-positive year", func(t *testing.T) {
		_, err := NewYear(-1)

		assert.Error(t, err)
	})
}

func TestSystemStats_Apply(t *testing.T) {
	t.Run("applies positive deltas", func(t *testing.T) {
		stats := &SystemStats{}

		stats.Apply(SystemStatsDelta{TotalStudents: 2, TotalNotPlaced: 2})

		assert.Equal(t, 2, stats.TotalStudents)
		assert.Equal(t, 2, stats.TotalNotPlaced)
		assert.NotNil(t, stats.LastUpdated)
	})

	t.Run("floors counters at zero", func(t *testing.T) {
		stats := &SystemStats{TotalPlaced: 1}

		stats.Apply(SystemStatsDelta{TotalPlaced: -5, TotalOffers: -1})

		assert.Equal(t, 0, stats.TotalPlaced)
		assert.Equal(t, 0, stats.TotalOffers)
	})
}
