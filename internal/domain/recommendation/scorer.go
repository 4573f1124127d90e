package recommendation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	WeightCategory   = 30.0
	WeightLocation   = 25.0
	WeightExperience = 25.0
	WeightSkills     = 20.0

	BonusUrgent = 5.0
	BonusRemote = 2.0

	// A candidate within 75% of the required years earns 70% of the weight.
	nearExperienceRatio    = 0.75
	partialExperienceRatio = 0.7

	maxMatchReasons    = 3
	maxMismatchReasons = 2
	maxListedSkills    = 3
	maxListedMissing   = 2
)

// nationwidePreferences are location values meaning "anywhere in Indonesia".
var nationwidePreferences = map[string]struct{}{
	"indonesia":         {},
	"seluruh indonesia": {},
}

type tally struct {
	score      float64
	matches    []string
	mismatches []string
	flexible   bool
}

func (t *tally) match(reason string)    { t.matches = append(t.matches, reason) }
func (t *tally) mismatch(reason string) { t.mismatches = append(t.mismatches, reason) }

// CalculateJobScore scores how well job fits profile. Profile fields that are
// not set do not contribute and are not penalised.
func CalculateJobScore(profile UserProfile, job Job) Score {
	t := &tally{}

	scoreCategory(t, profile, job)
	scoreLocation(t, profile, job)
	scoreExperience(t, profile, job)
	scoreSkills(t, profile, job)
	applyBonuses(t, job)

	score := int(math.Round(t.score))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Score{
		Job:             job,
		Score:           score,
		MatchReasons:    truncate(t.matches, maxMatchReasons),
		MismatchReasons: truncate(t.mismatches, maxMismatchReasons),
	}
}

func scoreCategory(t *tally, p UserProfile, job Job) {
	want := normalize(p.Category)
	if want == "" {
		return
	}
	if want == normalize(job.Category) {
		t.score += WeightCategory
		t.match(fmt.Sprintf("Kategori sesuai dengan minat Anda (%s)", job.Category))
		return
	}
	t.mismatch("Kategori pekerjaan berbeda dengan minat Anda")
}

func scoreLocation(t *tally, p UserProfile, job Job) {
	want := normalize(p.Location)
	if want == "" {
		return
	}

	switch {
	case job.IsRemote:
		t.score += WeightLocation
		t.flexible = true
		t.match("Lokasi fleksibel (remote)")
	case want == normalize(job.Province):
		t.score += WeightLocation
		t.match(fmt.Sprintf("Lokasi sesuai preferensi (%s)", job.Province))
	case isNationwide(want):
		t.score += WeightLocation / 2
		t.mismatch(fmt.Sprintf("Lokasi di %s, bukan lokasi spesifik pilihan Anda", job.Province))
	default:
		t.mismatch(fmt.Sprintf("Lokasi berbeda (%s)", job.Province))
	}
}

func scoreExperience(t *tally, p UserProfile, job Job) {
	if p.Experience == nil {
		return
	}
	have := *p.Experience
	need := ExtractMinExperience(job.Requirements)

	switch {
	case have >= need:
		t.score += WeightExperience
		t.match(fmt.Sprintf("Pengalaman Anda memenuhi syarat (%s tahun)", formatYears(have)))
	case have >= need*nearExperienceRatio:
		t.score += WeightExperience * partialExperienceRatio
		t.mismatch(fmt.Sprintf("Pengalaman sedikit di bawah syarat (%s tahun)", formatYears(need)))
	default:
		t.mismatch(fmt.Sprintf("Kurang pengalaman (dibutuhkan %s tahun)", formatYears(need)))
	}
}

func scoreSkills(t *tally, p UserProfile, job Job) {
	if len(p.Skills) == 0 {
		return
	}

	skills := normalizedNonBlank(p.Skills)
	rawSkills := nonBlank(p.Skills)
	reqs := make([]string, len(job.Requirements))
	for i, r := range job.Requirements {
		reqs[i] = normalize(r)
	}

	matched := make([]string, 0, len(skills))
	for i, s := range skills {
		for _, r := range reqs {
			if overlaps(s, r) {
				matched = append(matched, rawSkills[i])
				break
			}
		}
	}

	missing := make([]string, 0, len(reqs))
	for i, r := range reqs {
		found := false
		for _, s := range skills {
			if overlaps(s, r) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, strings.TrimSpace(job.Requirements[i]))
		}
	}

	// Several skills may hit one requirement; only the final score is clamped.
	if len(job.Requirements) > 0 {
		t.score += WeightSkills * float64(len(matched)) / float64(len(job.Requirements))
	}

	if len(matched) > 0 {
		t.match("Skill yang cocok: " + strings.Join(truncate(matched, maxListedSkills), ", "))
	}
	if len(missing) > 0 {
		t.mismatch("Skill yang dibutuhkan: " + strings.Join(truncate(missing, maxListedMissing), ", "))
	}
}

func applyBonuses(t *tally, job Job) {
	if job.IsUrgent {
		t.score = math.Min(t.score+BonusUrgent, 100)
		t.match("Lowongan dibutuhkan segera")
	}
	if job.IsRemote && !t.flexible {
		t.score = math.Min(t.score+BonusRemote, 100)
		t.match("Dapat bekerja secara remote")
	}
}

func overlaps(skill, requirement string) bool {
	return strings.Contains(requirement, skill) || strings.Contains(skill, requirement)
}

func isNationwide(location string) bool {
	_, ok := nationwidePreferences[location]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func normalizedNonBlank(in []string) []string {
	raw := nonBlank(in)
	out := make([]string, len(raw))
	for i, s := range raw {
		out[i] = strings.ToLower(s)
	}
	return out
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(in []string, n int) []string {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
