package cache

import (
	"testing"
	"time"

	"ai-marketplace-api/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBrowseKey_NormalizesSets(t *testing.T) {
	a := models.DefaultFilterState()
	a.Complexity = []models.Complexity{models.ComplexityExpert, models.ComplexityBeginner}

	b := models.DefaultFilterState()
	b.Categories = []models.Category{models.CategoryBots, models.CategoryAutomations, models.CategoryWorkflows, models.CategoryAgents}
	b.Complexity = []models.Complexity{models.ComplexityBeginner, models.ComplexityExpert}

	assert.Equal(t, GenerateBrowseKey("s1", a), GenerateBrowseKey("s1", b))
}

func TestGenerateBrowseKey_DistinguishesStates(t *testing.T) {
	base := models.DefaultFilterState()
	keys := map[string]bool{GenerateBrowseKey("s1", base): true}

	variants := []func(*models.FilterState){
		func(s *models.FilterState) { s.PriceRange[0] = 10 },
		func(s *models.FilterState) { s.PriceRange[1] = 400 },
		func(s *models.FilterState) { s.MinRating = 4.5 },
		func(s *models.FilterState) { s.Categories = s.Categories[:1] },
		func(s *models.FilterState) { s.Complexity = []models.Complexity{models.ComplexityAdvanced} },
		func(s *models.FilterState) { s.SearchQuery = "bot" },
	}

	for _, mutate := range variants {
		state := models.DefaultFilterState()
		mutate(&state)
		key := GenerateBrowseKey("s1", state)
		assert.False(t, keys[key], "duplicate key %s", key)
		keys[key] = true
	}

	assert.NotEqual(t, GenerateBrowseKey("s1", base), GenerateBrowseKey("s2", base))
}

func TestGenerateBrowseKey_RatingPrecision(t *testing.T) {
	coarse := models.DefaultFilterState()
	coarse.MinRating = 4.5
	fine := models.DefaultFilterState()
	fine.MinRating = 4.55

	assert.NotEqual(t, GenerateBrowseKey("s1", coarse), GenerateBrowseKey("s1", fine))
	assert.Contains(t, GenerateBrowseKey("s1", fine), ":r4.55")
	assert.Contains(t, GenerateBrowseKey("s1", models.DefaultFilterState()), ":r0")
}

func newMiniRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewRedisCache(Options{URL: "redis://" + mr.Addr(), TTL: time.Minute}, "s1")
	require.NotNil(t, r)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	r, mr := newMiniRedisCache(t)
	require.True(t, r.IsAvailable())

	state := models.DefaultFilterState()
	state.SearchQuery = "bot"
	key := r.GenerateBrowseKey(state)

	got, err := r.GetBrowseResults(key)
	require.NoError(t, err)
	assert.Nil(t, got)

	want := &models.BrowseResponse{
		Mode:      "results",
		Filtering: true,
		Filters:   state,
		Products:  []models.Product{{ID: "bots-0", Title: "Support Bot", Tags: []string{"Chat"}}},
		Total:     1,
		Duration:  "1ms",
	}
	require.NoError(t, r.SetBrowseResults(key, want))

	got, err = r.GetBrowseResults(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, []string{key}, r.GetAllKeys())
	assert.Equal(t, time.Minute, r.GetKeyTTL(key))

	mr.FastForward(2 * time.Minute)
	got, err = r.GetBrowseResults(key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Flush(t *testing.T) {
	r, _ := newMiniRedisCache(t)

	require.NoError(t, r.SetBrowseResults("browse:s1:a", &models.BrowseResponse{}))
	require.NoError(t, r.SetBrowseResults("browse:s1:b", &models.BrowseResponse{}))
	assert.Len(t, r.GetAllKeys(), 2)

	require.NoError(t, r.FlushCache())
	assert.Empty(t, r.GetAllKeys())
}

func TestRedisCache_NilIsSafe(t *testing.T) {
	var r *RedisCache

	assert.False(t, r.IsAvailable())
	assert.NoError(t, r.Close())
	assert.Empty(t, r.GetAllKeys())
	assert.Equal(t, "unavailable", r.GetStats()["status"])
	assert.Zero(t, r.GetKeyTTL("browse:x"))
	assert.Error(t, r.FlushCache())

	_, err := r.GetBrowseResults("browse:x")
	assert.Error(t, err)
	assert.Error(t, r.SetBrowseResults("browse:x", &models.BrowseResponse{}))
	assert.Equal(t, GenerateBrowseKey("", models.DefaultFilterState()), r.GenerateBrowseKey(models.DefaultFilterState()))
}

func TestNewRedisCache_EmptyURLDisablesCache(t *testing.T) {
	assert.Nil(t, NewRedisCache(Options{}, "s1"))
	assert.Nil(t, NewRedisCache(Options{URL: "not a url"}, "s1"))
}
