package search

import (
	"testing"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []models.CatalogEntry {
	return []models.CatalogEntry{
		{SourceRepo: "vercel-labs/agent-skills", SkillID: "react-best-practices", DisplayName: "React Best Practices", InstallCount: 900},
		{SourceRepo: "anthropics/skills", SkillID: "pdf", DisplayName: "pdf", InstallCount: 500},
		{SourceRepo: "anthropics/skills", SkillID: "frontend-design", DisplayName: "frontend-design", InstallCount: 400},
		{SourceRepo: "expo/skills", SkillID: "expo-app-design", DisplayName: "Expo App Design", InstallCount: 100},
	}
}

func TestFilter_EmptyQueryMeansNoFilter(t *testing.T) {
	got := Filter(sampleEntries(), "")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EmptyEntries(t *testing.T) {
	assert.Empty(t, Filter(nil, "react"))
}

func TestFilter_MatchesAnyField(t *testing.T) {
	entries := sampleEntries()

	// "anthropics" only appears in the source repo field.
	got := Filter(entries, "anthropics")
	assert.ElementsMatch(t, []int{1, 2}, got)

	// Subsequence match on the display name.
	got = Filter(entries, "rbp")
	require.NotEmpty(t, got)
	assert.Equal(t, 0, got[0])
}

func TestFilter_ExcludesNonMatches(t *testing.T) {
	assert.Empty(t, Filter(sampleEntries(), "zzzzqqq"))
}

func TestFilter_BestScoreFirst(t *testing.T) {
	entries := sampleEntries()
	got := Filter(entries, "design")
	require.Len(t, got, 2)
	for _, idx := range got {
		assert.Contains(t, entries[idx].SkillID, "design")
	}
}

func TestFilter_Deterministic(t *testing.T) {
	entries := sampleEntries()
	first := Filter(entries, "de")
	again := Filter(entries, "de")
	assert.Equal(t, first, again)

	// Removing and re-adding the last character reproduces the result.
	shorter := Filter(entries, "d")
	assert.NotNil(t, shorter)
	assert.Equal(t, first, Filter(entries, "de"))
}

func TestFilter_TiesKeepCatalogOrder(t *testing.T) {
	entries := []models.CatalogEntry{
		{SourceRepo: "a/x", SkillID: "same", DisplayName: "same"},
		{SourceRepo: "b/x", SkillID: "same", DisplayName: "same"},
		{SourceRepo: "c/x", SkillID: "same", DisplayName: "same"},
	}
	assert.Equal(t, []int{0, 1, 2}, Filter(entries, "same"))
}
