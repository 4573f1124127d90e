package cvquality

import "regexp"

type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
)

type SkillPattern struct {
	Category SkillCategory
	Pattern  *regexp.Regexp
}

// SkillPatterns is evaluated top to bottom for every skill.
var SkillPatterns = []SkillPattern{
	{Category: SkillTechnical, Pattern: regexp.MustCompile(`(?i)javascript|python|java|c\+\+|react|node|sql|aws|git|docker|kubernetes`)},
	{Category: SkillSoft, Pattern: regexp.MustCompile(`(?i)leadership|communication|teamwork|problem solving|time management|creative`)},
}

// ClassifySkills reports which categories are present in skills.
func ClassifySkills(skills []string) map[SkillCategory]bool {
	return classifyWith(SkillPatterns, skills)
}

func classifyWith(patterns []SkillPattern, skills []string) map[SkillCategory]bool {
	found := make(map[SkillCategory]bool, len(patterns))
	for _, s := range skills {
		for _, p := range patterns {
			if p.Pattern != nil && p.Pattern.MatchString(s) {
				found[p.Category] = true
			}
		}
	}
	return found
}
