package seeder

import (
	"context"
	"fmt"
	"sort"

	"career-navigator/internal/database"
	"career-navigator/internal/domain/catalog"
)

// CatalogSeeder upserts reference tables into the catalog_* schema. Rows already present
// are updated in place; rows missing from Tables are left untouched.
type CatalogSeeder struct {
	Tables catalog.Tables
}

func (CatalogSeeder) Name() string { return "reference_catalog" }

func (s CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if _, err := catalog.New(s.Tables); err != nil {
		return err
	}
	if err := RequireColumns(ctx, db, "catalog_roles", "name", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, r := range s.Tables.Roles {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO catalog_roles (name, position) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET position = EXCLUDED.position`,
			r.Name,
			i,
		); err != nil {
			return fmt.Errorf("role %s: %w", r.Name, err)
		}
		for j, req := range r.Requirements {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO catalog_role_skills (role_name, skill_name, required_level, position) VALUES ($1, $2, $3, $4)
ON CONFLICT (role_name, skill_name) DO UPDATE SET required_level = EXCLUDED.required_level, position = EXCLUDED.position`,
				r.Name,
				req.Skill,
				req.Level,
				j,
			); err != nil {
				return fmt.Errorf("role %s skill %s: %w", r.Name, req.Skill, err)
			}
		}
	}

	for _, m := range s.Tables.Market {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO catalog_job_market (role_name, avg_salary, growth_rate, demand) VALUES ($1, $2, $3, $4)
ON CONFLICT (role_name) DO UPDATE SET avg_salary = EXCLUDED.avg_salary, growth_rate = EXCLUDED.growth_rate, demand = EXCLUDED.demand`,
			m.Role,
			m.AvgSalary,
			m.GrowthRate,
			m.Demand,
		); err != nil {
			return fmt.Errorf("job market %s: %w", m.Role, err)
		}
	}

	for i, c := range s.Tables.Courses {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO catalog_courses (skill_name, name, platform, duration, position) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (skill_name, name) DO UPDATE SET platform = EXCLUDED.platform, duration = EXCLUDED.duration, position = EXCLUDED.position`,
			c.Skill,
			c.Name,
			c.Platform,
			c.Duration,
			i,
		); err != nil {
			return fmt.Errorf("course %s: %w", c.Name, err)
		}
	}

	for _, role := range sortedKeys(s.Tables.Roadmaps) {
		for i, m := range s.Tables.Roadmaps[role] {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO catalog_roadmap_milestones (role_name, position, name, focus_skill, action, recommended_course) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (role_name, position) DO UPDATE SET name = EXCLUDED.name, focus_skill = EXCLUDED.focus_skill, action = EXCLUDED.action, recommended_course = EXCLUDED.recommended_course`,
				role,
				i,
				m.Name,
				m.FocusSkill,
				m.Action,
				m.RecommendedCourse,
			); err != nil {
				return fmt.Errorf("roadmap %s: %w", role, err)
			}
		}
	}

	for _, role := range sortedKeys(s.Tables.InterviewQuestions) {
		for i, q := range s.Tables.InterviewQuestions[role] {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO catalog_interview_questions (role_name, position, question) VALUES ($1, $2, $3)
ON CONFLICT (role_name, position) DO UPDATE SET question = EXCLUDED.question`,
				role,
				i,
				q,
			); err != nil {
				return fmt.Errorf("interview questions %s: %w", role, err)
			}
		}
	}

	for i, n := range s.Tables.News {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO catalog_news (position, headline, link) VALUES ($1, $2, $3)
ON CONFLICT (position) DO UPDATE SET headline = EXCLUDED.headline, link = EXCLUDED.link`,
			i,
			n.Headline,
			n.Link,
		); err != nil {
			return fmt.Errorf("news: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
