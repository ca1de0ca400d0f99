package career

import (
	"fmt"

	"career-navigator/internal/domain/catalog"
)

type FocusArea string

const (
	FocusTechnicalSkills FocusArea = "Technical Skills"
	FocusSoftSkills      FocusArea = "Soft Skills"
	FocusCertifications  FocusArea = "Certifications"

	monthsPerMilestone = 3
)

var certificationMilestone = catalog.RoadmapMilestone{
	Name:              "Final Milestone",
	FocusSkill:        "Certification",
	Action:            "Prepare for and obtain an industry-recognized certification to validate your skills and boost your profile.",
	RecommendedCourse: "Certification programs on Coursera/Udacity/edX",
}

func ParseFocusArea(s string) (FocusArea, error) {
	switch f := FocusArea(s); f {
	case FocusTechnicalSkills, FocusSoftSkills, FocusCertifications:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFocusArea, s)
	}
}

type RoadmapRequest struct {
	Role           string
	TimelineMonths int
	FocusAreas     []FocusArea
}

// RoadmapPlan carries the curated milestones followed by the certification milestone
// when Certifications is among the focus areas.
type RoadmapPlan struct {
	Role             string
	TimelineMonths   int
	KnownRole        bool
	Milestones       []catalog.RoadmapMilestone
	CuratedCount     int
	ExtendedTimeline bool
	Note             string
}

// Roadmap returns the curated milestones of a role in catalog order. Unknown roles get
// an empty list.
func Roadmap(cat *catalog.Catalog, role string) []catalog.RoadmapMilestone {
	if cat == nil {
		return []catalog.RoadmapMilestone{}
	}
	return cat.Roadmap(role)
}

// PlanRoadmap wraps Roadmap with the timeline and focus selection. Neither changes the
// curated milestones: the timeline only produces a note when it covers more
// milestones than exist, and Certifications appends one fixed milestone.
func PlanRoadmap(cat *catalog.Catalog, req RoadmapRequest) (RoadmapPlan, error) {
	if req.TimelineMonths < 1 {
		return RoadmapPlan{}, ErrInvalidTimeline
	}
	for _, f := range req.FocusAreas {
		if _, err := ParseFocusArea(string(f)); err != nil {
			return RoadmapPlan{}, err
		}
	}

	curated := Roadmap(cat, req.Role)
	plan := RoadmapPlan{
		Role:           req.Role,
		TimelineMonths: req.TimelineMonths,
		KnownRole:      cat != nil && cat.HasRole(req.Role),
		Milestones:     curated,
		CuratedCount:   len(curated),
	}

	if req.TimelineMonths/monthsPerMilestone > len(curated) {
		plan.ExtendedTimeline = true
		plan.Note = fmt.Sprintf("Your selected timeline allows for more milestones than available. Showing the full roadmap for %s.", req.Role)
	}

	if hasFocus(req.FocusAreas, FocusCertifications) {
		plan.Milestones = append(plan.Milestones, certificationMilestone)
	}

	return plan, nil
}

func hasFocus(areas []FocusArea, want FocusArea) bool {
	for _, f := range areas {
		if f == want {
			return true
		}
	}
	return false
}
