package dto

import (
	"career-navigator/internal/domain/career"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/usecase"
)

type EvaluateRequest struct {
	TargetRole      string         `json:"target_role"`
	Skills          map[string]int `json:"skills"`
	ExperienceYears int            `json:"experience_years"`
	ProjectionYears int            `json:"projection_years"`
	Degree          string         `json:"degree"`
	Region          string         `json:"region"`
}

func (r EvaluateRequest) Input() usecase.EvaluateInput {
	return usecase.EvaluateInput{
		TargetRole:      r.TargetRole,
		Skills:          r.Skills,
		ExperienceYears: r.ExperienceYears,
		ProjectionYears: r.ProjectionYears,
		Degree:          r.Degree,
		Region:          r.Region,
	}
}

type SkillRequirementResponse struct {
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

type SkillGapResponse struct {
	Skill string `json:"skill"`
	Gap   int    `json:"gap"`
}

type ScoreDimensionResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ProjectionPointResponse struct {
	Year      int     `json:"year"`
	Potential float64 `json:"potential"`
}

type CourseResponse struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
}

type CourseRecommendationResponse struct {
	Skill   string           `json:"skill"`
	Gap     int              `json:"gap"`
	Courses []CourseResponse `json:"courses"`
}

type MentorResponse struct {
	Tier    string `json:"tier"`
	Message string `json:"message"`
}

type EvaluationResponse struct {
	Role            string                         `json:"role"`
	Degree          string                         `json:"degree,omitempty"`
	Region          string                         `json:"region,omitempty"`
	Requirements    []SkillRequirementResponse     `json:"requirements"`
	Gaps            []SkillGapResponse             `json:"gaps"`
	Score           []ScoreDimensionResponse       `json:"score"`
	Projection      []ProjectionPointResponse      `json:"projection"`
	Recommendations []CourseRecommendationResponse `json:"recommendations"`
	Mentor          MentorResponse                 `json:"mentor"`
	Cached          bool                           `json:"cached"`
}

func NewEvaluationResponse(res usecase.EvaluationResult) EvaluationResponse {
	out := EvaluationResponse{
		Role:            res.Role,
		Degree:          res.Degree,
		Region:          res.Region,
		Requirements:    NewRequirementResponses(res.Requirements),
		Gaps:            make([]SkillGapResponse, 0, len(res.Gaps)),
		Score:           NewScoreResponse(res.Score),
		Projection:      NewProjectionPoints(res.Projection),
		Recommendations: make([]CourseRecommendationResponse, 0, len(res.Courses)),
		Mentor:          MentorResponse{Tier: string(res.Mentor.Tier), Message: res.Mentor.Message},
		Cached:          res.Cached,
	}
	for _, g := range res.Gaps {
		out.Gaps = append(out.Gaps, SkillGapResponse{Skill: g.Skill, Gap: g.Gap})
	}
	for _, rec := range res.Courses {
		courses := make([]CourseResponse, 0, len(rec.Courses))
		for _, c := range rec.Courses {
			courses = append(courses, CourseResponse{Name: c.Name, Platform: c.Platform, Duration: c.Duration})
		}
		out.Recommendations = append(out.Recommendations, CourseRecommendationResponse{Skill: rec.Skill, Gap: rec.Gap, Courses: courses})
	}
	return out
}

func NewRequirementResponses(reqs []catalog.SkillRequirement) []SkillRequirementResponse {
	out := make([]SkillRequirementResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, SkillRequirementResponse{Skill: r.Skill, Level: r.Level})
	}
	return out
}

func NewScoreResponse(v career.PotentialScoreVector) []ScoreDimensionResponse {
	dims := v.Dimensions()
	out := make([]ScoreDimensionResponse, 0, len(dims))
	for _, d := range dims {
		out = append(out, ScoreDimensionResponse{Name: d.Name, Value: d.Value})
	}
	return out
}

func NewProjectionPoints(points []career.ProjectionPoint) []ProjectionPointResponse {
	out := make([]ProjectionPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ProjectionPointResponse{Year: p.Year, Potential: p.Potential})
	}
	return out
}

type ProjectionResponse struct {
	Role   string                    `json:"role"`
	Market MarketResponse            `json:"market"`
	Points []ProjectionPointResponse `json:"points"`
}

func NewProjectionResponse(res usecase.ProjectionResult) ProjectionResponse {
	return ProjectionResponse{
		Role:   res.Role,
		Market: NewMarketResponse(res.Market),
		Points: NewProjectionPoints(res.Points),
	}
}
