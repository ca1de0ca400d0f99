package dto

import "career-navigator/internal/domain/career"

type MilestoneResponse struct {
	Name              string `json:"name"`
	FocusSkill        string `json:"focus_skill"`
	Action            string `json:"action"`
	RecommendedCourse string `json:"recommended_course"`
}

type RoadmapResponse struct {
	Role             string              `json:"role"`
	TimelineMonths   int                 `json:"timeline_months"`
	KnownRole        bool                `json:"known_role"`
	CuratedCount     int                 `json:"curated_count"`
	ExtendedTimeline bool                `json:"extended_timeline"`
	Note             string              `json:"note,omitempty"`
	Milestones       []MilestoneResponse `json:"milestones"`
}

func NewRoadmapResponse(p career.RoadmapPlan) RoadmapResponse {
	out := RoadmapResponse{
		Role:             p.Role,
		TimelineMonths:   p.TimelineMonths,
		KnownRole:        p.KnownRole,
		CuratedCount:     p.CuratedCount,
		ExtendedTimeline: p.ExtendedTimeline,
		Note:             p.Note,
		Milestones:       make([]MilestoneResponse, 0, len(p.Milestones)),
	}
	for _, m := range p.Milestones {
		out.Milestones = append(out.Milestones, MilestoneResponse{
			Name:              m.Name,
			FocusSkill:        m.FocusSkill,
			Action:            m.Action,
			RecommendedCourse: m.RecommendedCourse,
		})
	}
	return out
}
