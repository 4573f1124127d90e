package recommendation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// yearsRule extracts a minimum number of years from free text.
type yearsRule struct {
	Pattern *regexp.Regexp
}

// keywordRule maps a seniority keyword to a minimum number of years.
type keywordRule struct {
	Keywords []string
	Years    float64
}

// ExperienceYearRules are tried in order; the first match wins.
var ExperienceYearRules = []yearsRule{
	{Pattern: regexp.MustCompile(`(?i)(\d+)\+?\s*tahun`)},
	{Pattern: regexp.MustCompile(`(?i)minimal\s*(\d+)\s*tahun`)},
	{Pattern: regexp.MustCompile(`(?i)at least\s*(\d+)\s*years?`)},
}

// ExperienceKeywordRules apply only when no year rule matched.
var ExperienceKeywordRules = []keywordRule{
	{Keywords: []string{"entry", "junior"}, Years: 0},
	{Keywords: []string{"senior"}, Years: 5},
	{Keywords: []string{"lead", "manager"}, Years: 7},
}

const defaultMinExperience = 2

// ExtractMinExperience derives the minimum years of experience a job asks for.
func ExtractMinExperience(requirements []string) float64 {
	text := strings.Join(requirements, " ")

	for _, r := range ExperienceYearRules {
		m := r.Pattern.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		// Digits only, so the sole failure is overflow, which saturates.
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		return n
	}

	lower := strings.ToLower(text)
	for _, r := range ExperienceKeywordRules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Years
			}
		}
	}
	return defaultMinExperience
}
