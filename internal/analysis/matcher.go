package analysis

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/esgsentinel/sentinel/internal/catalog"
)

// MatchResult is the outcome of running the keyword catalog against a
// document's full text.
type MatchResult struct {
	// Targets are the detected target labels, in catalog declaration
	// order. Empty when no family matched.
	Targets []string

	// Matched is the deduplicated, lexicographically sorted set of
	// member keywords from every matched family, for display.
	Matched []string

	// ScanKeywords is the same keyword set in catalog declaration
	// order. The evidence locator depends on this ordering.
	ScanKeywords []string

	// FamiliesMatched counts families with at least one hit.
	FamiliesMatched int
}

// MatchFamilies tests, per family, whether any member keyword occurs as
// a substring anywhere in the case-folded full text. A single hit
// matches the whole family: its target label and all of its member
// keywords, not just the one that occurred.
func MatchFamilies(fullText string, families []catalog.Family) MatchResult {
	// cases.Caser is stateful, so fold with a fresh one per call.
	folded := cases.Fold().String(fullText)

	res := MatchResult{
		Targets:      []string{},
		Matched:      []string{},
		ScanKeywords: []string{},
	}

	seen := make(map[string]struct{})
	for _, f := range families {
		hit := false
		for _, kw := range f.Keywords {
			if strings.Contains(folded, kw) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		res.FamiliesMatched++
		res.Targets = append(res.Targets, f.Target)
		for _, kw := range f.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			res.ScanKeywords = append(res.ScanKeywords, kw)
			res.Matched = append(res.Matched, kw)
		}
	}
	sort.Strings(res.Matched)
	return res
}
