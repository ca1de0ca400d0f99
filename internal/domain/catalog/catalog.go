package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCatalog = errors.New("invalid reference catalog")

// Catalog is the read-only reference data. It is built once by New and never mutated,
// so it can be shared by concurrent requests without locking. Every accessor returns a
// copy.
type Catalog struct {
	roleOrder   []string
	roles       map[string]Role
	market      map[string]JobMarketStat
	marketOrder []string
	courses     map[string][]Course
	courseOrder []Course
	roadmaps    map[string][]RoadmapMilestone
	questions   map[string][]string
	news        []NewsItem
}

func New(t Tables) (*Catalog, error) {
	c := &Catalog{
		roles:     make(map[string]Role, len(t.Roles)),
		market:    make(map[string]JobMarketStat, len(t.Market)),
		courses:   make(map[string][]Course),
		roadmaps:  make(map[string][]RoadmapMilestone, len(t.Roadmaps)),
		questions: make(map[string][]string, len(t.InterviewQuestions)),
	}

	for _, r := range t.Roles {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty role name", ErrInvalidCatalog)
		}
		if _, ok := c.roles[name]; ok {
			return nil, fmt.Errorf("%w: duplicate role %q", ErrInvalidCatalog, name)
		}

		seen := make(map[string]struct{}, len(r.Requirements))
		reqs := make([]SkillRequirement, 0, len(r.Requirements))
		for _, req := range r.Requirements {
			if req.Skill == "" {
				return nil, fmt.Errorf("%w: role %q has an empty skill name", ErrInvalidCatalog, name)
			}
			if _, ok := seen[req.Skill]; ok {
				return nil, fmt.Errorf("%w: role %q lists skill %q twice", ErrInvalidCatalog, name, req.Skill)
			}
			if req.Level < MinSkillLevel || req.Level > MaxSkillLevel {
				return nil, fmt.Errorf("%w: role %q skill %q level %d out of range", ErrInvalidCatalog, name, req.Skill, req.Level)
			}
			seen[req.Skill] = struct{}{}
			reqs = append(reqs, req)
		}

		c.roles[name] = Role{Name: name, Requirements: reqs}
		c.roleOrder = append(c.roleOrder, name)
	}

	for _, m := range t.Market {
		if _, ok := c.roles[m.Role]; !ok {
			return nil, fmt.Errorf("%w: job market row for unknown role %q", ErrInvalidCatalog, m.Role)
		}
		if _, ok := c.market[m.Role]; ok {
			return nil, fmt.Errorf("%w: duplicate job market row for %q", ErrInvalidCatalog, m.Role)
		}
		if m.AvgSalary <= 0 {
			return nil, fmt.Errorf("%w: role %q average salary must be positive", ErrInvalidCatalog, m.Role)
		}
		if m.GrowthRate < 0 {
			return nil, fmt.Errorf("%w: role %q growth rate must not be negative", ErrInvalidCatalog, m.Role)
		}
		if m.Demand < 0 || m.Demand > 100 {
			return nil, fmt.Errorf("%w: role %q demand must be within 0-100", ErrInvalidCatalog, m.Role)
		}
		c.market[m.Role] = m
		c.marketOrder = append(c.marketOrder, m.Role)
	}

	for _, co := range t.Courses {
		if co.Skill == "" || strings.TrimSpace(co.Name) == "" {
			return nil, fmt.Errorf("%w: course without skill or name", ErrInvalidCatalog)
		}
		c.courses[co.Skill] = append(c.courses[co.Skill], co)
		c.courseOrder = append(c.courseOrder, co)
	}

	for role, ms := range t.Roadmaps {
		if _, ok := c.roles[role]; !ok {
			return nil, fmt.Errorf("%w: roadmap for unknown role %q", ErrInvalidCatalog, role)
		}
		c.roadmaps[role] = append([]RoadmapMilestone(nil), ms...)
	}

	for role, qs := range t.InterviewQuestions {
		if _, ok := c.roles[role]; !ok {
			return nil, fmt.Errorf("%w: interview questions for unknown role %q", ErrInvalidCatalog, role)
		}
		c.questions[role] = append([]string(nil), qs...)
	}

	c.news = append([]NewsItem(nil), t.News...)

	return c, nil
}

// MustNew is New for tables known to be valid, such as Defaults.
func MustNew(t Tables) *Catalog {
	c, err := New(t)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) RoleNames() []string {
	return append([]string(nil), c.roleOrder...)
}

func (c *Catalog) Roles() []Role {
	out := make([]Role, 0, len(c.roleOrder))
	for _, name := range c.roleOrder {
		r, _ := c.Role(name)
		out = append(out, r)
	}
	return out
}

func (c *Catalog) Role(name string) (Role, bool) {
	r, ok := c.roles[name]
	if !ok {
		return Role{}, false
	}
	return Role{Name: r.Name, Requirements: append([]SkillRequirement(nil), r.Requirements...)}, true
}

func (c *Catalog) HasRole(name string) bool {
	_, ok := c.roles[name]
	return ok
}

// Requirements returns the role's skill -> required level mapping.
func (c *Catalog) Requirements(name string) (map[string]int, bool) {
	r, ok := c.roles[name]
	if !ok {
		return nil, false
	}
	return r.RequirementMap(), true
}

func (c *Catalog) Market(name string) (JobMarketStat, bool) {
	m, ok := c.market[name]
	return m, ok
}

func (c *Catalog) Markets() []JobMarketStat {
	out := make([]JobMarketStat, 0, len(c.marketOrder))
	for _, name := range c.marketOrder {
		out = append(out, c.market[name])
	}
	return out
}

// Courses matches the skill name exactly.
func (c *Catalog) Courses(skill string) []Course {
	return append([]Course{}, c.courses[skill]...)
}

func (c *Catalog) AllCourses() []Course {
	return append([]Course{}, c.courseOrder...)
}

func (c *Catalog) Roadmap(name string) []RoadmapMilestone {
	return append([]RoadmapMilestone{}, c.roadmaps[name]...)
}

func (c *Catalog) InterviewQuestions(name string) ([]string, bool) {
	qs, ok := c.questions[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), qs...), true
}

func (c *Catalog) News() []NewsItem {
	return append([]NewsItem{}, c.news...)
}

// Tables exports the catalog back into its load format, in catalog order.
func (c *Catalog) Tables() Tables {
	t := Tables{
		Roles:              c.Roles(),
		Market:             c.Markets(),
		Courses:            c.AllCourses(),
		Roadmaps:           make(map[string][]RoadmapMilestone, len(c.roadmaps)),
		InterviewQuestions: make(map[string][]string, len(c.questions)),
		News:               c.News(),
	}
	for role := range c.roadmaps {
		t.Roadmaps[role] = c.Roadmap(role)
	}
	for role := range c.questions {
		t.InterviewQuestions[role], _ = c.InterviewQuestions(role)
	}
	return t
}

func (r Role) RequirementMap() map[string]int {
	out := make(map[string]int, len(r.Requirements))
	for _, req := range r.Requirements {
		out[req.Skill] = req.Level
	}
	return out
}
