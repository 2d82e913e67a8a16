package prompts

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"homepage/internal/models"
)

// Filter returns the prompts of catalog that match every predicate of criteria,
// ordered by title. The catalog is never modified.
//
// An unset or "all" category/platform passes everything; a value outside the
// closed sets matches nothing.
func Filter(catalog []models.Prompt, criteria models.FilterCriteria) []models.Prompt {
	query := strings.ToLower(criteria.Query)

	matched := make([]models.Prompt, 0, len(catalog))
	for _, p := range catalog {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesCategory(p, criteria.Category) {
			continue
		}
		if !matchesPlatform(p, criteria.Platform) {
			continue
		}
		matched = append(matched, p)
	}

	SortByTitle(matched)
	return matched
}

// matchesQuery expects query already lowercased.
func matchesQuery(p models.Prompt, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}

func matchesCategory(p models.Prompt, c models.Category) bool {
	if c == "" || c == models.SelectAll {
		return true
	}
	if !c.Valid() {
		return false
	}
	return p.Category == c
}

func matchesPlatform(p models.Prompt, pl models.Platform) bool {
	if pl == "" || pl == models.SelectAll {
		return true
	}
	if !pl.Valid() {
		return false
	}
	return p.HasPlatform(pl)
}

// SortByTitle orders prompts in place by locale-aware title collation.
// Titles that collate equal fall back to byte order and then to ID, so the
// result does not depend on the input order.
func SortByTitle(ps []models.Prompt) {
	// A Collator keeps scratch buffers; one per call keeps Filter safe for concurrent use.
	col := collate.New(language.English)
	slices.SortStableFunc(ps, func(a, b models.Prompt) int {
		if c := col.CompareString(a.Title, b.Title); c != 0 {
			return c
		}
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
