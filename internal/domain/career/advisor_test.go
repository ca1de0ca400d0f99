package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCourses_TopGapsWithCourses(t *testing.T) {
	cat := defaultCatalog(t)
	gaps := map[string]int{"Python": 2, "ML": 3, "TensorFlow": 4, "Quantum": 1}

	recs := RecommendCourses(cat, gaps, DefaultRecommendationLimit)

	require.Len(t, recs, 3)
	assert.Equal(t, "TensorFlow", recs[0].Skill)
	assert.Equal(t, 4, recs[0].Gap)
	require.Len(t, recs[0].Courses, 1)
	assert.Equal(t, "TensorFlow Pro", recs[0].Courses[0].Name)
	assert.Equal(t, "ML", recs[1].Skill)
	assert.Equal(t, "Python", recs[2].Skill)
}

func TestRecommendCourses_SkillWithoutCourse(t *testing.T) {
	cat := defaultCatalog(t)

	recs := RecommendCourses(cat, map[string]int{"Quantum": 2}, 3)

	require.Len(t, recs, 1)
	assert.NotNil(t, recs[0].Courses)
	assert.Empty(t, recs[0].Courses)
}

func TestAdviseMentor_Tiers(t *testing.T) {
	cases := map[int]MentorTier{0: MentorJunior, 1: MentorJunior, 2: MentorMid, 4: MentorMid, 5: MentorSenior, 30: MentorSenior}
	for years, want := range cases {
		got := AdviseMentor(years)
		assert.Equal(t, want, got.Tier, "years=%d", years)
		assert.NotEmpty(t, got.Message)
	}
}

func TestInterviewQuestions_Fallback(t *testing.T) {
	cat := defaultCatalog(t)

	assert.Len(t, InterviewQuestions(cat, "Data Engineer"), 3)
	assert.Equal(t, []string{"No interview questions available for this role."}, InterviewQuestions(cat, "Astronaut"))
}

func TestBuildSkillNetwork(t *testing.T) {
	cat := defaultCatalog(t)

	net := BuildSkillNetwork(cat)

	roles, skills := 0, 0
	for _, n := range net.Nodes {
		switch n.Type {
		case NodeRole:
			roles++
		case NodeSkill:
			skills++
		}
	}
	assert.Equal(t, 8, roles)
	assert.Equal(t, 18, skills)

	edges := 0
	for _, r := range cat.Roles() {
		edges += len(r.Requirements)
	}
	assert.Len(t, net.Edges, edges)
}
