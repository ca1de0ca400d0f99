package catalog

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

type SkillRequirement struct {
	Skill string
	Level int
}

type Role struct {
	Name         string
	Requirements []SkillRequirement
}

// JobMarketStat holds the market figures for one role. GrowthRate is a percentage and
// Demand is on a 0-100 scale.
type JobMarketStat struct {
	Role       string
	AvgSalary  float64
	GrowthRate float64
	Demand     float64
}

type Course struct {
	Skill    string
	Name     string
	Platform string
	Duration string
}

type RoadmapMilestone struct {
	Name              string
	FocusSkill        string
	Action            string
	RecommendedCourse string
}

type NewsItem struct {
	Headline string
	Link     string
}

// Tables is the load format of the reference catalog, whether it comes from the
// built-in defaults or from Postgres.
type Tables struct {
	Roles              []Role
	Market             []JobMarketStat
	Courses            []Course
	Roadmaps           map[string][]RoadmapMilestone
	InterviewQuestions map[string][]string
	News               []NewsItem
}
