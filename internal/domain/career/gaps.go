package career

import "sort"

// SkillGap is one entry of a gap map in ranked form.
type SkillGap struct {
	Skill string
	Gap   int
}

// ComputeGaps returns, for every required skill the user falls short on, the number of
// levels missing. Skills absent from userSkills count as level 0. Skills the user meets
// or exceeds are left out, so an empty map means the role is fully satisfied.
func ComputeGaps(userSkills, requirements map[string]int) map[string]int {
	gaps := make(map[string]int)
	for skill, required := range requirements {
		actual := userSkills[skill]
		if actual < required {
			gaps[skill] = required - actual
		}
	}
	return gaps
}

// RankGaps orders gaps largest first, breaking ties by skill name, and keeps at most
// limit entries. limit <= 0 keeps all of them.
func RankGaps(gaps map[string]int, limit int) []SkillGap {
	out := make([]SkillGap, 0, len(gaps))
	for skill, gap := range gaps {
		if gap <= 0 {
			continue
		}
		out = append(out, SkillGap{Skill: skill, Gap: gap})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		return out[i].Skill < out[j].Skill
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sumGaps(gaps map[string]int) int {
	total := 0
	for _, g := range gaps {
		total += g
	}
	return total
}
