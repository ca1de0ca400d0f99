package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"career-navigator/internal/database"
	"career-navigator/internal/domain/catalog"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: expected %d columns, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case **string:
			if row[i] == nil {
				*p = nil
				continue
			}
			v := row[i].(string)
			*p = &v
		case **int:
			if row[i] == nil {
				*p = nil
				continue
			}
			v := row[i].(int)
			*p = &v
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	tables map[string][][]any
	err    error
}

func (q fakeQuerier) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (q fakeQuerier) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (q fakeQuerier) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	for _, table := range []string{
		"catalog_roles r",
		"catalog_job_market m",
		"catalog_courses",
		"catalog_roadmap_milestones",
		"catalog_interview_questions",
		"catalog_news",
	} {
		if strings.Contains(query, "FROM "+table) {
			if q.err != nil && table == "catalog_courses" {
				return nil, q.err
			}
			return &fakeRows{data: q.tables[table]}, nil
		}
	}
	return nil, errors.New("unexpected query")
}

func TestPostgresCatalogRepository_LoadTables(t *testing.T) {
	q := fakeQuerier{tables: map[string][][]any{
		"catalog_roles r": {
			{"Data Engineer", "Python", 4},
			{"Data Engineer", "SQL", 4},
			{"Empty Role", nil, nil},
		},
		"catalog_job_market m": {
			{"Data Engineer", 95000.0, 15.0, 85.0},
		},
		"catalog_courses": {
			{"SQL", "SQL Mastery", "Udemy", "4w"},
		},
		"catalog_roadmap_milestones": {
			{"Data Engineer", "Foundations", "Python", "learn", "Advanced Python"},
			{"Data Engineer", "Intermediate", "SQL", "practice", "SQL Mastery"},
		},
		"catalog_interview_questions": {
			{"Data Engineer", "What is ETL?"},
		},
		"catalog_news": {
			{"Hiring surge", "https://example.com/a"},
		},
	}}

	tables, err := NewPostgresCatalogRepository(q).LoadTables(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(tables.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(tables.Roles))
	}
	if len(tables.Roles[0].Requirements) != 2 || tables.Roles[0].Requirements[1].Skill != "SQL" {
		t.Fatalf("unexpected requirements: %+v", tables.Roles[0].Requirements)
	}
	if len(tables.Roles[1].Requirements) != 0 {
		t.Fatalf("expected role without skills, got %+v", tables.Roles[1].Requirements)
	}
	if tables.Market[0].AvgSalary != 95000 {
		t.Fatalf("unexpected market: %+v", tables.Market)
	}
	if len(tables.Roadmaps["Data Engineer"]) != 2 || tables.Roadmaps["Data Engineer"][1].Name != "Intermediate" {
		t.Fatalf("unexpected roadmaps: %+v", tables.Roadmaps)
	}
	if len(tables.InterviewQuestions["Data Engineer"]) != 1 || len(tables.News) != 1 {
		t.Fatalf("unexpected questions or news")
	}

	if _, err := catalog.New(tables); err != nil {
		t.Fatalf("expected loaded tables to build a catalog: %v", err)
	}
}

func TestPostgresCatalogRepository_LoadTables_QueryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewPostgresCatalogRepository(fakeQuerier{err: boom}).LoadTables(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
	if !strings.Contains(err.Error(), "load courses") {
		t.Fatalf("expected table context in error, got %v", err)
	}
}
