package cvquality

import "math"

const (
	maxStrengthsPerSection = 2
	maxStrengths           = 5
	maxImprovements        = 4
)

type weightedSection struct {
	weight  float64
	analyze func(CV) SectionFeedback
}

// sectionOrder fixes both the weighting and the order of Feedback.Sections.
var sectionOrder = []weightedSection{
	{weight: 0.20, analyze: func(cv CV) SectionFeedback { return analyzePersonal(cv.PersonalInfo) }},
	{weight: 0.20, analyze: func(cv CV) SectionFeedback { return analyzeEducation(cv.Education) }},
	{weight: 0.25, analyze: func(cv CV) SectionFeedback { return analyzeExperience(cv.WorkExperience) }},
	{weight: 0.20, analyze: func(cv CV) SectionFeedback { return analyzeSkills(cv.Skills) }},
	{weight: 0.15, analyze: func(cv CV) SectionFeedback { return analyzeCertifications(cv.Certifications) }},
}

// Analyze scores cv. It never fails: missing data scores as zero contribution.
func Analyze(cv CV) Feedback {
	sections := make([]SectionFeedback, 0, len(sectionOrder))
	total := 0.0
	for _, ws := range sectionOrder {
		sf := ws.analyze(cv)
		total += float64(sf.Score) * ws.weight
		sections = append(sections, sf)
	}

	score := capScore(int(math.Round(total)))

	strengths := make([]string, 0, maxStrengths)
	improvements := make([]string, 0, maxImprovements)
	for _, sf := range sections {
		n := len(sf.strengths)
		if n > maxStrengthsPerSection {
			n = maxStrengthsPerSection
		}
		strengths = append(strengths, sf.strengths[:n]...)
		if len(sf.Suggestions) > 0 {
			improvements = append(improvements, sf.Suggestions[0])
		}
	}
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(improvements) > maxImprovements {
		improvements = improvements[:maxImprovements]
	}

	return Feedback{
		Score:          score,
		Grade:          GradeFor(score),
		Strengths:      strengths,
		Improvements:   improvements,
		Sections:       sections,
		OverallMessage: OverallMessage(score),
	}
}
