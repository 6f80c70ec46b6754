package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/esgsentinel/sentinel/constants"
	"github.com/esgsentinel/sentinel/internal/document"
)

// LocateEvidence scans every page for the given keywords and returns
// bounded-context snippets for each occurrence, in strict scan order:
// page ascending, then keyword order as supplied (catalog order), then
// occurrence position ascending. The result is truncated to the global
// evidence cap after full ordered generation; the cap is never applied
// per page or per keyword.
//
// Only the supplied keywords are searched at all, so evidence can never
// name a keyword outside the matched set.
func LocateEvidence(pages []document.Page, keywords []string, window int) []Evidence {
	evidence := []Evidence{}
	if len(keywords) == 0 {
		return evidence
	}

	for pi, page := range pages {
		low := strings.ToLower(page.Text)
		if strings.TrimSpace(low) == "" {
			continue
		}

		for _, kw := range keywords {
			// Non-overlapping scan: each search resumes after the
			// previous match's end.
			start := 0
			for {
				idx := strings.Index(low[start:], kw)
				if idx == -1 {
					break
				}
				idx += start
				evidence = append(evidence, Evidence{
					Keyword: kw,
					Page:    pi + 1,
					Snippet: snippet(page.Text, idx, len(kw), window),
				})
				start = idx + len(kw)
			}
		}
	}

	if len(evidence) > constants.EvidenceCap {
		evidence = evidence[:constants.EvidenceCap]
	}
	return evidence
}

// snippet extracts window bytes of context on each side of the match in
// the original-case text, flattens newlines, and trims the edges.
// Slice bounds are nudged to rune starts so a window never splits a
// UTF-8 sequence.
func snippet(text string, idx, kwLen, window int) string {
	right := idx + kwLen + window
	if right > len(text) {
		right = len(text)
	}
	left := idx - window
	if left < 0 {
		left = 0
	}
	if left > right {
		left = right
	}
	for left > 0 && left < len(text) && !utf8.RuneStart(text[left]) {
		left--
	}
	for right < len(text) && !utf8.RuneStart(text[right]) {
		right++
	}
	return strings.TrimSpace(strings.ReplaceAll(text[left:right], "\n", " "))
}
