package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-navigator/internal/domain/career"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultProjectionYears = 5
	MaxProjectionYears     = 30
	MaxRoadmapMonths       = 120
	DefaultNewsLimit       = 7
)

type EvaluateInput struct {
	TargetRole      string         `json:"target_role" validate:"required,max=100"`
	Skills          map[string]int `json:"skills" validate:"dive,keys,required,max=64,endkeys,min=1,max=5"`
	ExperienceYears int            `json:"experience_years" validate:"min=0,max=60"`
	ProjectionYears int            `json:"projection_years" validate:"min=1,max=30"`
	Degree          string         `json:"degree" validate:"omitempty,oneof=Bachelor's Master's PhD"`
	Region          string         `json:"region" validate:"omitempty,oneof=Urban Rural Underrepresented"`
}

type EvaluationResult struct {
	Role         string
	Degree       string
	Region       string
	Requirements []catalog.SkillRequirement
	Gaps         []career.SkillGap
	Score        career.PotentialScoreVector
	Projection   []career.ProjectionPoint
	Courses      []career.CourseRecommendation
	Mentor       career.MentorAdvice
	Cached       bool `json:"-"`
}

type ProjectionResult struct {
	Role   string
	Market catalog.JobMarketStat
	Points []career.ProjectionPoint
}

type RoadmapInput struct {
	Role           string
	TimelineMonths int
	FocusAreas     []string
}

type NewsReader interface {
	Latest(limit int) []catalog.NewsItem
}

type CareerUsecase interface {
	Evaluate(ctx context.Context, in EvaluateInput) (EvaluationResult, error)
	Project(ctx context.Context, role string, years int) (ProjectionResult, error)
	PlanRoadmap(ctx context.Context, in RoadmapInput) (career.RoadmapPlan, error)
	ListRoles(ctx context.Context) []catalog.Role
	Role(ctx context.Context, name string) (catalog.Role, error)
	ListMarket(ctx context.Context) []catalog.JobMarketStat
	InterviewQuestions(ctx context.Context, role string) ([]string, error)
	SkillNetwork(ctx context.Context) career.SkillNetwork
	LatestNews(ctx context.Context, limit int) []catalog.NewsItem
}

type Career struct {
	cat         *catalog.Catalog
	fingerprint string
	news        NewsReader
	cache       ResultCache
	cacheTTL    time.Duration
	validate    *validator.Validate
	logger      *log.Logger
}

func NewCareerUsecase(cat *catalog.Catalog, news NewsReader, cache ResultCache, cacheTTL time.Duration, logger *log.Logger) *Career {
	return &Career{
		cat:         cat,
		fingerprint: fingerprint(cat.Tables()),
		news:        news,
		cache:       cache,
		cacheTTL:    cacheTTL,
		validate:    validation.New(),
		logger:      logger,
	}
}

func (u *Career) Evaluate(ctx context.Context, in EvaluateInput) (EvaluationResult, error) {
	in, err := normalizeEvaluateInput(in)
	if err != nil {
		return EvaluationResult{}, err
	}
	if err := u.validate.Struct(in); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			return EvaluationResult{}, &ValidationError{Fields: fields}
		}
		return EvaluationResult{}, ErrInvalidInput
	}

	role, ok := u.cat.Role(in.TargetRole)
	if !ok {
		return EvaluationResult{}, ErrUnknownRole
	}
	stat, ok := u.cat.Market(in.TargetRole)
	if !ok {
		return EvaluationResult{}, ErrNoMarketData
	}

	cacheKey := EvaluateCacheKey(u.fingerprint, in)
	if u.cache != nil {
		var cached EvaluationResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Career] Cache HIT: %s", cacheKey)
			}
			cached.Cached = true
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Career] Cache MISS: %s", cacheKey)
		}
	}

	requirements := role.RequirementMap()
	gaps := career.ComputeGaps(in.Skills, requirements)

	projection, err := career.Project(stat, in.ProjectionYears)
	if err != nil {
		return EvaluationResult{}, err
	}

	out := EvaluationResult{
		Role:         role.Name,
		Degree:       in.Degree,
		Region:       in.Region,
		Requirements: role.Requirements,
		Gaps:         career.RankGaps(gaps, 0),
		Score:        career.Score(requirements, in.Skills, stat),
		Projection:   projection,
		Courses:      career.RecommendCourses(u.cat, gaps, career.DefaultRecommendationLimit),
		Mentor:       career.AdviseMentor(in.ExperienceYears),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Career] Cache SET failed: %s err=%v", cacheKey, err)
		}
	}

	return out, nil
}

// normalizeEvaluateInput trims names and fills defaults. Skill names that collide after
// trimming are rejected, since either level could win.
func normalizeEvaluateInput(in EvaluateInput) (EvaluateInput, error) {
	in.TargetRole = strings.TrimSpace(in.TargetRole)
	in.Degree = strings.TrimSpace(in.Degree)
	in.Region = strings.TrimSpace(in.Region)
	if in.ProjectionYears == 0 {
		in.ProjectionYears = DefaultProjectionYears
	}

	skills := make(map[string]int, len(in.Skills))
	var dup map[string]string
	for name, level := range in.Skills {
		key := strings.TrimSpace(name)
		if _, ok := skills[key]; ok {
			if dup == nil {
				dup = make(map[string]string)
			}
			dup["skills["+key+"]"] = "is listed more than once"
			continue
		}
		skills[key] = level
	}
	if dup != nil {
		return EvaluateInput{}, &ValidationError{Fields: dup}
	}
	in.Skills = skills
	return in, nil
}

func (u *Career) Project(_ context.Context, role string, years int) (ProjectionResult, error) {
	role = strings.TrimSpace(role)
	if !u.cat.HasRole(role) {
		return ProjectionResult{}, ErrUnknownRole
	}
	if years > MaxProjectionYears {
		return ProjectionResult{}, &ValidationError{Fields: map[string]string{"years": "must be at most 30"}}
	}
	stat, ok := u.cat.Market(role)
	if !ok {
		return ProjectionResult{}, ErrNoMarketData
	}

	points, err := career.Project(stat, years)
	if err != nil {
		return ProjectionResult{}, err
	}
	return ProjectionResult{Role: role, Market: stat, Points: points}, nil
}

// PlanRoadmap returns an empty plan with KnownRole false for roles outside the catalog.
func (u *Career) PlanRoadmap(_ context.Context, in RoadmapInput) (career.RoadmapPlan, error) {
	if in.TimelineMonths > MaxRoadmapMonths {
		return career.RoadmapPlan{}, &ValidationError{Fields: map[string]string{"timeline": "must be at most 120"}}
	}

	focus := make([]career.FocusArea, 0, len(in.FocusAreas))
	for _, raw := range in.FocusAreas {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		f, err := career.ParseFocusArea(raw)
		if err != nil {
			return career.RoadmapPlan{}, err
		}
		focus = append(focus, f)
	}

	plan, err := career.PlanRoadmap(u.cat, career.RoadmapRequest{
		Role:           strings.TrimSpace(in.Role),
		TimelineMonths: in.TimelineMonths,
		FocusAreas:     focus,
	})
	if err != nil {
		return career.RoadmapPlan{}, err
	}
	if !plan.KnownRole && u.logger != nil {
		u.logger.Printf("[Career] Roadmap requested for unknown role=%q", plan.Role)
	}
	return plan, nil
}

func (u *Career) ListRoles(context.Context) []catalog.Role {
	return u.cat.Roles()
}

func (u *Career) Role(_ context.Context, name string) (catalog.Role, error) {
	r, ok := u.cat.Role(strings.TrimSpace(name))
	if !ok {
		return catalog.Role{}, ErrUnknownRole
	}
	return r, nil
}

func (u *Career) ListMarket(context.Context) []catalog.JobMarketStat {
	return u.cat.Markets()
}

func (u *Career) InterviewQuestions(_ context.Context, role string) ([]string, error) {
	role = strings.TrimSpace(role)
	if !u.cat.HasRole(role) {
		return nil, ErrUnknownRole
	}
	return career.InterviewQuestions(u.cat, role), nil
}

func (u *Career) SkillNetwork(context.Context) career.SkillNetwork {
	return career.BuildSkillNetwork(u.cat)
}

// LatestNews reads the live store and falls back to the catalog headlines.
func (u *Career) LatestNews(_ context.Context, limit int) []catalog.NewsItem {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	if u.news != nil {
		if items := u.news.Latest(limit); len(items) > 0 {
			return items
		}
	}
	items := u.cat.News()
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// IsClientError reports whether err is caused by the request rather than the server.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnknownRole) ||
		errors.Is(err, ErrNoMarketData) ||
		errors.Is(err, career.ErrInvalidTimeline) ||
		errors.Is(err, career.ErrInvalidFocusArea)
}
