package cache

import (
	"context"
	"strings"
	"testing"

	"karir-nusantara/internal/domain/recommendation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationKey(t *testing.T) {
	exp := 3.0
	a := RecommendationKey("u1", recommendation.UserProfile{
		Skills: []string{"Go", " PostgreSQL "}, Category: "Teknologi", Location: "Jawa  Barat", Experience: &exp,
	}, 10)
	b := RecommendationKey("u1", recommendation.UserProfile{
		Skills: []string{"postgresql", "go", ""}, Category: "teknologi", Location: "jawa barat", Experience: &exp,
	}, 10)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "recs:u1:"))

	other := RecommendationKey("u1", recommendation.UserProfile{Skills: []string{"Go"}}, 10)
	assert.NotEqual(t, a, other)
	assert.NotEqual(t, a, RecommendationKey("u1", recommendation.UserProfile{
		Skills: []string{"Go", "PostgreSQL"}, Category: "Teknologi", Location: "Jawa Barat", Experience: &exp,
	}, 5))
}

func TestRedis_BypassesWithoutClient(t *testing.T) {
	r := NewRedis(nil, 0, nil)
	ctx := context.Background()

	var out map[string]any
	found, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, r.SetJSON(ctx, "k", map[string]any{"a": 1}, 0))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.InvalidateRecommendations(ctx))
	assert.Error(t, r.Ping(ctx))
}
