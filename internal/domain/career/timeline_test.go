package career

import (
	"testing"

	"career-navigator/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_CapsAtYearOne(t *testing.T) {
	stat := catalog.JobMarketStat{Demand: 90, GrowthRate: 25}

	pts, err := Project(stat, 3)

	require.NoError(t, err)
	assert.Equal(t, []ProjectionPoint{
		{Year: 1, Potential: 100},
		{Year: 2, Potential: 100},
		{Year: 3, Potential: 100},
	}, pts)
}

func TestProject_GrowsThenFlattens(t *testing.T) {
	stat := catalog.JobMarketStat{Demand: 80, GrowthRate: 10}

	pts, err := Project(stat, 6)

	require.NoError(t, err)
	require.Len(t, pts, 6)
	assert.Equal(t, 85.0, pts[0].Potential)
	assert.Equal(t, 95.0, pts[2].Potential)
	assert.Equal(t, 100.0, pts[3].Potential)
	for i, p := range pts {
		assert.Equal(t, i+1, p.Year)
		assert.LessOrEqual(t, p.Potential, 100.0)
		if i > 0 {
			assert.GreaterOrEqual(t, p.Potential, pts[i-1].Potential)
		}
	}
}

func TestProject_ZeroGrowthIsFlat(t *testing.T) {
	pts, err := Project(catalog.JobMarketStat{Demand: 42}, 4)

	require.NoError(t, err)
	for _, p := range pts {
		assert.Equal(t, 42.0, p.Potential)
	}
}

func TestProject_RejectsNonPositiveYears(t *testing.T) {
	for _, years := range []int{0, -1} {
		pts, err := Project(catalog.JobMarketStat{Demand: 50}, years)
		assert.ErrorIs(t, err, ErrInvalidTimeline)
		assert.Nil(t, pts)
	}
}
