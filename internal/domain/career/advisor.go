package career

import "career-navigator/internal/domain/catalog"

const (
	DefaultRecommendationLimit = 3

	noInterviewQuestions = "No interview questions available for this role."
)

type CourseRecommendation struct {
	Skill   string
	Gap     int
	Courses []catalog.Course
}

// RecommendCourses resolves the largest gaps to catalog courses. A skill with no
// matching course is still listed, with an empty course list.
func RecommendCourses(cat *catalog.Catalog, gaps map[string]int, limit int) []CourseRecommendation {
	ranked := RankGaps(gaps, limit)
	out := make([]CourseRecommendation, 0, len(ranked))
	for _, g := range ranked {
		courses := []catalog.Course{}
		if cat != nil {
			courses = cat.Courses(g.Skill)
		}
		out = append(out, CourseRecommendation{Skill: g.Skill, Gap: g.Gap, Courses: courses})
	}
	return out
}

type MentorTier string

const (
	MentorJunior MentorTier = "junior"
	MentorMid    MentorTier = "mid"
	MentorSenior MentorTier = "senior"
)

type MentorAdvice struct {
	Tier    MentorTier
	Message string
}

func AdviseMentor(experienceYears int) MentorAdvice {
	switch {
	case experienceYears < 2:
		return MentorAdvice{Tier: MentorJunior, Message: "Junior Mentor: Look for industry peers or recent grads to guide you through early challenges."}
	case experienceYears < 5:
		return MentorAdvice{Tier: MentorMid, Message: "Mid-Level Mentor: Connect with professionals with 5-10 years of experience for mentorship."}
	default:
		return MentorAdvice{Tier: MentorSenior, Message: "Senior Mentor: Seek out industry leaders or executives to refine your career strategy."}
	}
}

// InterviewQuestions never returns an empty list; roles without questions get a
// single placeholder line.
func InterviewQuestions(cat *catalog.Catalog, role string) []string {
	if cat != nil {
		if qs, ok := cat.InterviewQuestions(role); ok && len(qs) > 0 {
			return qs
		}
	}
	return []string{noInterviewQuestions}
}
