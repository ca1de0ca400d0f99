package career

import (
	"testing"

	"career-navigator/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Defaults())
	require.NoError(t, err)
	return c
}

func TestRoadmap_DataEngineer(t *testing.T) {
	cat := defaultCatalog(t)

	ms := Roadmap(cat, "Data Engineer")

	require.Len(t, ms, 3)
	assert.Equal(t, "Foundations", ms[0].Name)
	assert.Equal(t, "Intermediate ETL & Cloud", ms[1].Name)
	assert.Equal(t, "Advanced Data Engineering", ms[2].Name)
	for _, m := range ms {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Action)
		assert.NotEmpty(t, m.RecommendedCourse)
	}
	assert.Equal(t, ms, Roadmap(cat, "Data Engineer"))
}

func TestRoadmap_UnknownRoleIsEmpty(t *testing.T) {
	cat := defaultCatalog(t)

	ms := Roadmap(cat, "Nonexistent Role")

	assert.NotNil(t, ms)
	assert.Empty(t, ms)
}

func TestPlanRoadmap_TimelineNote(t *testing.T) {
	cat := defaultCatalog(t)

	short, err := PlanRoadmap(cat, RoadmapRequest{Role: "Cloud Architect", TimelineMonths: 9})
	require.NoError(t, err)
	assert.False(t, short.ExtendedTimeline)
	assert.Empty(t, short.Note)

	long, err := PlanRoadmap(cat, RoadmapRequest{Role: "Cloud Architect", TimelineMonths: 12})
	require.NoError(t, err)
	assert.True(t, long.ExtendedTimeline)
	assert.Contains(t, long.Note, "Cloud Architect")
	assert.Equal(t, short.Milestones, long.Milestones)
}

func TestPlanRoadmap_CertificationAppended(t *testing.T) {
	cat := defaultCatalog(t)

	plan, err := PlanRoadmap(cat, RoadmapRequest{
		Role:           "DevOps Engineer",
		TimelineMonths: 6,
		FocusAreas:     []FocusArea{FocusTechnicalSkills, FocusCertifications},
	})

	require.NoError(t, err)
	require.Len(t, plan.Milestones, 4)
	assert.Equal(t, 3, plan.CuratedCount)
	assert.Equal(t, "Certification", plan.Milestones[3].FocusSkill)
	assert.Equal(t, Roadmap(cat, "DevOps Engineer"), plan.Milestones[:3])

	noCert, err := PlanRoadmap(cat, RoadmapRequest{Role: "DevOps Engineer", TimelineMonths: 6, FocusAreas: []FocusArea{FocusSoftSkills}})
	require.NoError(t, err)
	assert.Len(t, noCert.Milestones, 3)
}

func TestPlanRoadmap_UnknownRole(t *testing.T) {
	cat := defaultCatalog(t)

	plan, err := PlanRoadmap(cat, RoadmapRequest{Role: "Astronaut", TimelineMonths: 12, FocusAreas: []FocusArea{FocusCertifications}})

	require.NoError(t, err)
	assert.False(t, plan.KnownRole)
	assert.Equal(t, 0, plan.CuratedCount)
	require.Len(t, plan.Milestones, 1)
	assert.True(t, plan.ExtendedTimeline)
}

func TestPlanRoadmap_InvalidInput(t *testing.T) {
	cat := defaultCatalog(t)

	_, err := PlanRoadmap(cat, RoadmapRequest{Role: "Data Engineer", TimelineMonths: 0})
	assert.ErrorIs(t, err, ErrInvalidTimeline)

	_, err = PlanRoadmap(cat, RoadmapRequest{Role: "Data Engineer", TimelineMonths: 6, FocusAreas: []FocusArea{"Networking"}})
	assert.ErrorIs(t, err, ErrInvalidFocusArea)
}
