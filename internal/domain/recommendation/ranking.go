package recommendation

import "sort"

const (
	DefaultLimit = 10

	// MinScore is exclusive: a job scoring exactly MinScore is not recommended.
	MinScore = 30
)

// GetJobRecommendations scores jobs against profile and returns the best
// matches in descending score order. Ties keep their input order.
func GetJobRecommendations(profile UserProfile, jobs []Job, limit int) []Score {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Score, 0, len(jobs))
	for _, j := range jobs {
		s := CalculateJobScore(profile, j)
		if s.Score <= MinScore {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
