package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestViewKind_Cycle(t *testing.T) {
	assert.Equal(t, ViewTrending, ViewAllTime.Next())
	assert.Equal(t, ViewHot, ViewTrending.Next())
	assert.Equal(t, ViewAllTime, ViewHot.Next())

	assert.Equal(t, ViewHot, ViewAllTime.Prev())
	assert.Equal(t, ViewAllTime, ViewTrending.Prev())
	assert.Equal(t, ViewTrending, ViewHot.Prev())
}

func TestViewKind_Labels(t *testing.T) {
	assert.Equal(t, "All Time", ViewAllTime.Label())
	assert.Equal(t, "Trending (24h)", ViewTrending.Label())
	assert.Equal(t, "Hot", ViewHot.Label())
}

func TestParseViewKind(t *testing.T) {
	tests := []struct {
		in   string
		want ViewKind
	}{
		{"all-time", ViewAllTime},
		{"trending", ViewTrending},
		{"hot", ViewHot},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseViewKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.Slug())
		})
	}

	_, err := ParseViewKind("weekly")
	assert.Error(t, err)
}

func TestSort_AllTimeByInstallsStable(t *testing.T) {
	entries := []CatalogEntry{
		{SkillID: "a", InstallCount: 5},
		{SkillID: "b", InstallCount: 9},
		{SkillID: "c", InstallCount: 5},
		{SkillID: "d", InstallCount: 12},
	}

	ViewAllTime.Sort(entries)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.SkillID
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
}

func TestSort_TrendingTreatsMissingDeltaAsZero(t *testing.T) {
	entries := []CatalogEntry{
		{SkillID: "none"},
		{SkillID: "down", ChangeDelta: ptr(-3)},
		{SkillID: "up", ChangeDelta: ptr(7)},
		{SkillID: "zero", ChangeDelta: ptr(0)},
	}

	ViewTrending.Sort(entries)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.SkillID
	}
	assert.Equal(t, []string{"up", "none", "zero", "down"}, ids)
}

func TestCatalogEntry_InstallCommand(t *testing.T) {
	e := CatalogEntry{SourceRepo: "vercel-labs/agent-skills", SkillID: "react-best-practices"}
	assert.Equal(t,
		"npx skills add https://github.com/vercel-labs/agent-skills --skill react-best-practices",
		e.InstallCommand())
}
