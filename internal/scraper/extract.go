package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/models"
)

const (
	wrapperMarker = `[{"skills":`
	sourceMarker  = `"source":`
)

// rawSkill mirrors one record of the embedded catalog payload. The
// pointer fields let required keys be told apart from zero values.
type rawSkill struct {
	Source            *string `json:"source"`
	SkillID           *string `json:"skillId"`
	Name              *string `json:"name"`
	Installs          *int64  `json:"installs"`
	InstallsYesterday *int64  `json:"installsYesterday"`
	Change            *int64  `json:"change"`
}

type skillsWrapper struct {
	Skills []rawSkill `json:"skills"`
}

// ExtractEntries pulls the ranked skill list out of a catalog page. The
// payload sits in a script blob whose quoting varies, so three strategies
// are tried in order and the first non-empty result wins:
//
//  1. un-escape \" and decode the [{"skills":[...]}] wrapper
//  2. decode the wrapper from the page as-is
//  3. decode the bare array enclosing the first "source": key
func ExtractEntries(html string) ([]models.CatalogEntry, error) {
	unescaped := strings.ReplaceAll(html, `\"`, `"`)

	strategies := []func() []models.CatalogEntry{
		func() []models.CatalogEntry { return parseWrapper(unescaped) },
		func() []models.CatalogEntry { return parseWrapper(html) },
		func() []models.CatalogEntry { return parseBareArray(unescaped) },
	}

	for _, try := range strategies {
		if entries := try(); len(entries) > 0 {
			return entries, nil
		}
	}

	return nil, fmt.Errorf("%w: could not extract skills data from page", ErrParse)
}

func parseWrapper(html string) []models.CatalogEntry {
	start := strings.Index(html, wrapperMarker)
	if start < 0 {
		return nil
	}

	span, ok := balancedSpan(html[start:])
	if !ok {
		return nil
	}

	var wrappers []skillsWrapper
	if err := json.Unmarshal([]byte(span), &wrappers); err != nil || len(wrappers) == 0 {
		return nil
	}

	return convertRaw(wrappers[0].Skills)
}

func parseBareArray(html string) []models.CatalogEntry {
	pos := strings.Index(html, sourceMarker)
	if pos < 0 {
		return nil
	}

	before := html[:pos]
	start := strings.LastIndex(before, "[")
	if start < 0 || !strings.Contains(before[start:], "{") {
		return nil
	}

	span, ok := balancedSpan(html[start:])
	if !ok {
		return nil
	}

	var raws []rawSkill
	if err := json.Unmarshal([]byte(span), &raws); err != nil {
		return nil
	}

	return convertRaw(raws)
}

// balancedSpan returns the prefix of s that starts at its first byte (an
// opening '[') and ends where bracket depth returns to zero.
func balancedSpan(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// convertRaw maps decoded records to entries. Any record missing a
// required key fails the whole batch.
func convertRaw(raws []rawSkill) []models.CatalogEntry {
	entries := make([]models.CatalogEntry, 0, len(raws))
	for _, r := range raws {
		if r.Source == nil || r.SkillID == nil || r.Name == nil || r.Installs == nil {
			return nil
		}
		entries = append(entries, models.CatalogEntry{
			SourceRepo:            *r.Source,
			SkillID:               *r.SkillID,
			DisplayName:           *r.Name,
			InstallCount:          *r.Installs,
			InstallCountYesterday: r.InstallsYesterday,
			ChangeDelta:           r.Change,
		})
	}
	return entries
}
