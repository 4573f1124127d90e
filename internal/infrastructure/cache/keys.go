package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"karir-nusantara/internal/domain/recommendation"
)

const RecommendationPattern = "recs:*"

type recommendationKeyInput struct {
	Skills     []string `json:"skills"`
	Category   string   `json:"category"`
	Location   string   `json:"location"`
	Experience *float64 `json:"experience"`
	Limit      int      `json:"limit"`
}

func normalizeKeyValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// RecommendationKey fingerprints the fields that influence scoring, so a
// profile or draft edit naturally misses the old entry.
func RecommendationKey(userID string, p recommendation.UserProfile, limit int) string {
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		s = normalizeKeyValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	sort.Strings(skills)

	in := recommendationKeyInput{
		Skills:     skills,
		Category:   normalizeKeyValue(p.Category),
		Location:   normalizeKeyValue(p.Location),
		Experience: p.Experience,
		Limit:      limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recs:" + strings.TrimSpace(userID) + ":" + hex.EncodeToString(sum[:])
}
