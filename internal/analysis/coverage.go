package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/esgsentinel/sentinel/constants"
	"github.com/esgsentinel/sentinel/internal/document"
)

// CoverageMetrics describes how much of the document could be read as
// text at all. Recomputed every call, never persisted.
type CoverageMetrics struct {
	PagesTotal    int
	PagesFailed   int
	PagesWithText int

	// CoveragePct and ParseSuccessPct are rounded to one decimal.
	CoveragePct     float64
	ParseSuccessPct float64

	// Coverage is the unrounded fraction in [0,1] fed to the
	// confidence scorer.
	Coverage float64

	// TextExtracted is what downstream consumers should branch on.
	// It is NOT pagesFailed == 0: a document can parse cleanly and
	// still contain zero extractable text.
	TextExtracted bool
}

// MeasureCoverage computes parse-success and text-coverage metrics over
// the page set. A zero-page document degrades to all-zero metrics.
func MeasureCoverage(pages []document.Page) CoverageMetrics {
	m := CoverageMetrics{PagesTotal: len(pages)}
	for _, p := range pages {
		if p.DecodeFailed {
			m.PagesFailed++
		}
		if utf8.RuneCountInString(strings.TrimSpace(p.Text)) >= constants.MinTextChars {
			m.PagesWithText++
		}
	}
	if m.PagesTotal > 0 {
		m.ParseSuccessPct = round1(100 * float64(m.PagesTotal-m.PagesFailed) / float64(m.PagesTotal))
		m.Coverage = float64(m.PagesWithText) / float64(m.PagesTotal)
		m.CoveragePct = round1(100 * m.Coverage)
	}
	m.TextExtracted = m.CoveragePct > 0
	return m
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
