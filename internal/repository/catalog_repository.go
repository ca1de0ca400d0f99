package repository

import (
	"context"
	"fmt"

	"career-navigator/internal/database"
	"career-navigator/internal/domain/catalog"
)

type CatalogRepository interface {
	LoadTables(ctx context.Context) (catalog.Tables, error)
}

type PostgresCatalogRepository struct {
	db database.Querier
}

func NewPostgresCatalogRepository(db database.Querier) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// LoadTables reads every catalog_* table in position order. Validation is left to
// catalog.New.
func (r *PostgresCatalogRepository) LoadTables(ctx context.Context) (catalog.Tables, error) {
	var t catalog.Tables
	var err error

	if t.Roles, err = r.loadRoles(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load roles: %w", err)
	}
	if t.Market, err = r.loadMarket(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load job market: %w", err)
	}
	if t.Courses, err = r.loadCourses(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load courses: %w", err)
	}
	if t.Roadmaps, err = r.loadRoadmaps(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load roadmaps: %w", err)
	}
	if t.InterviewQuestions, err = r.loadInterviewQuestions(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load interview questions: %w", err)
	}
	if t.News, err = r.loadNews(ctx); err != nil {
		return catalog.Tables{}, fmt.Errorf("load news: %w", err)
	}
	return t, nil
}

func (r *PostgresCatalogRepository) loadRoles(ctx context.Context) ([]catalog.Role, error) {
	rows, err := r.db.Query(ctx, `
SELECT r.name, s.skill_name, s.required_level
FROM catalog_roles r
LEFT JOIN catalog_role_skills s ON s.role_name = r.name
ORDER BY r.position ASC, s.position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Role, 0)
	for rows.Next() {
		var name string
		var skill *string
		var level *int
		if err := rows.Scan(&name, &skill, &level); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, catalog.Role{Name: name})
		}
		if skill != nil && level != nil {
			last := &out[len(out)-1]
			last.Requirements = append(last.Requirements, catalog.SkillRequirement{Skill: *skill, Level: *level})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadMarket(ctx context.Context) ([]catalog.JobMarketStat, error) {
	rows, err := r.db.Query(ctx, `
SELECT m.role_name, m.avg_salary::float8, m.growth_rate::float8, m.demand::float8
FROM catalog_job_market m
JOIN catalog_roles r ON r.name = m.role_name
ORDER BY r.position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.JobMarketStat, 0)
	for rows.Next() {
		var m catalog.JobMarketStat
		if err := rows.Scan(&m.Role, &m.AvgSalary, &m.GrowthRate, &m.Demand); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_name, name, platform, duration FROM catalog_courses ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Course, 0)
	for rows.Next() {
		var c catalog.Course
		if err := rows.Scan(&c.Skill, &c.Name, &c.Platform, &c.Duration); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadRoadmaps(ctx context.Context) (map[string][]catalog.RoadmapMilestone, error) {
	rows, err := r.db.Query(ctx, `
SELECT role_name, name, focus_skill, action, recommended_course
FROM catalog_roadmap_milestones
ORDER BY role_name ASC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]catalog.RoadmapMilestone{}
	for rows.Next() {
		var role string
		var m catalog.RoadmapMilestone
		if err := rows.Scan(&role, &m.Name, &m.FocusSkill, &m.Action, &m.RecommendedCourse); err != nil {
			return nil, err
		}
		out[role] = append(out[role], m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadInterviewQuestions(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.Query(ctx, `SELECT role_name, question FROM catalog_interview_questions ORDER BY role_name ASC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var role, q string
		if err := rows.Scan(&role, &q); err != nil {
			return nil, err
		}
		out[role] = append(out[role], q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) loadNews(ctx context.Context) ([]catalog.NewsItem, error) {
	rows, err := r.db.Query(ctx, `SELECT headline, link FROM catalog_news ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.NewsItem, 0)
	for rows.Next() {
		var n catalog.NewsItem
		if err := rows.Scan(&n.Headline, &n.Link); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
