package career

import (
	"math"

	"career-navigator/internal/domain/catalog"
)

const growthPerYearFactor = 0.5

type ProjectionPoint struct {
	Year      int
	Potential float64
}

// Project extrapolates the role's career potential for years 1..years. Values are hard
// capped at 100, so the curve is non-decreasing and flat once it reaches the cap.
func Project(stat catalog.JobMarketStat, years int) ([]ProjectionPoint, error) {
	if years < 1 {
		return nil, ErrInvalidTimeline
	}

	out := make([]ProjectionPoint, 0, years)
	for year := 1; year <= years; year++ {
		p := stat.Demand + stat.GrowthRate*float64(year)*growthPerYearFactor
		out = append(out, ProjectionPoint{Year: year, Potential: math.Min(100, p)})
	}
	return out, nil
}
