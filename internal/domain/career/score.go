package career

import (
	"math"

	"career-navigator/internal/domain/catalog"
)

const (
	salaryNormalizer = 2000.0
	chancesDamping   = 0.8

	// Stability and Trust are not derived from any input yet.
	StabilityScore = 75.0
	TrustScore     = 85.0
)

// PotentialScoreVector is the six-dimension fit summary for a role. Salary and Growth
// follow the market inputs and are not clamped to 100.
type PotentialScoreVector struct {
	Salary    float64
	Skills    float64
	Chances   float64
	Stability float64
	Trust     float64
	Growth    float64
}

type Dimension struct {
	Name  string
	Value float64
}

func (v PotentialScoreVector) Dimensions() []Dimension {
	return []Dimension{
		{Name: "Salary", Value: v.Salary},
		{Name: "Skills", Value: v.Skills},
		{Name: "Chances", Value: v.Chances},
		{Name: "Stability", Value: v.Stability},
		{Name: "Trust", Value: v.Trust},
		{Name: "Growth", Value: v.Growth},
	}
}

// Score builds the potential vector for a user against a role. Only the Skills
// dimension depends on the user.
func Score(requirements, userSkills map[string]int, stat catalog.JobMarketStat) PotentialScoreVector {
	return PotentialScoreVector{
		Salary:    stat.AvgSalary / salaryNormalizer,
		Skills:    skillsScore(requirements, ComputeGaps(userSkills, requirements)),
		Chances:   math.Min(100, stat.Demand*chancesDamping),
		Stability: StabilityScore,
		Trust:     TrustScore,
		Growth:    stat.GrowthRate,
	}
}

// skillsScore is 100 minus the average gap as a percentage of the largest possible gap
// per skill. A role without requirements cannot have a gap and scores 100.
func skillsScore(requirements, gaps map[string]int) float64 {
	if len(requirements) == 0 {
		return 100
	}
	ratio := float64(sumGaps(gaps)) / float64(len(requirements)*catalog.MaxSkillLevel)
	return math.Max(0, 100-ratio*100)
}
