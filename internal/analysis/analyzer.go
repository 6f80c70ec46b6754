// Package analysis implements the evidence-extraction and scoring
// engine: keyword-family matching over per-page document text, bounded
// context snippets for every hit, text-coverage metrics, and a combined
// confidence heuristic.
//
// The whole pipeline is a pure, single-pass computation per document.
// No component retains state across calls, so one Analyzer may serve
// concurrent requests.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/esgsentinel/sentinel/constants"
	"github.com/esgsentinel/sentinel/internal/catalog"
	"github.com/esgsentinel/sentinel/internal/document"
)

// Analyzer assembles a full Result from a decoded document.
type Analyzer struct {
	families []catalog.Family
	window   int
}

// NewAnalyzer returns an Analyzer over the fixed catalog. window is the
// snippet context size in characters per side; values below zero fall
// back to the default.
func NewAnalyzer(window int) *Analyzer {
	if window < 0 {
		window = constants.DefaultContextWindow
	}
	return &Analyzer{families: catalog.Families, window: window}
}

// Analyze runs matching, evidence location, coverage measurement and
// confidence scoring over the document and assembles the response.
//
// When no family matched, a fixed fallback target list is substituted
// and flagged via fallback_mode so consumers do not treat it as
// evidence-backed. Matched keywords and evidence always reflect the
// true match result; fallback substitutes labels, never evidence.
func (a *Analyzer) Analyze(doc document.Document) Result {
	match := MatchFamilies(doc.FullText(), a.families)
	evidence := LocateEvidence(doc.Pages, match.ScanKeywords, a.window)
	metrics := MeasureCoverage(doc.Pages)

	targets := match.Targets
	fallbackMode := false
	if len(targets) == 0 {
		fallbackMode = true
		targets = catalog.FallbackTargets()
	}

	// The family term uses the true match count (0 under fallback)
	// while the target term counts the reported list, fallback
	// included. Historical behavior, kept as-is.
	confidence := ScoreConfidence(metrics.Coverage, match.FamiliesMatched, len(targets))

	return Result{
		Explainability: Explainability{
			MatchedKeywords: match.Matched,
			Evidence:        evidence,
		},
		DocumentMetadata: DocumentMetadata{
			SourceFilename: doc.Filename,
			FacilityType:   constants.FacilityType,
			GoverningLaw:   constants.GoverningLaw,
			LMAStandard:    constants.LMAStandard,
		},
		SustainabilityTargets: targets,
		RatchetConfig: RatchetConfig{
			StepBps:               constants.RatchetStepBps,
			VerificationFrequency: constants.VerificationFrequency,
			MaxSteps:              len(targets),
		},
		PricingAssumptions: PricingAssumptions{
			Notional: constants.PricingNotional,
			Currency: constants.PricingCurrency,
		},
		ExtractionWarnings: ExtractionWarnings{
			PagesFailed: metrics.PagesFailed,
			TextLength:  doc.TextLength(),
			Note:        constants.ExtractionNote,
		},
		Scoring: Scoring{
			Confidence:      confidence,
			CoveragePct:     metrics.CoveragePct,
			ParseSuccessPct: metrics.ParseSuccessPct,
			PagesTotal:      metrics.PagesTotal,
			PagesFailed:     metrics.PagesFailed,
			PagesWithText:   metrics.PagesWithText,
			TargetsDetected: len(targets),
			KeywordHits:     len(match.Matched),
			FallbackMode:    fallbackMode,
			TextExtracted:   metrics.TextExtracted,
		},
		Debug: debugInfo(doc),
	}
}

func debugInfo(doc document.Document) Debug {
	d := Debug{First5PageTextLengths: []int{}}
	for i, p := range doc.Pages {
		trimmed := utf8.RuneCountInString(strings.TrimSpace(p.Text))
		if i < 5 {
			d.First5PageTextLengths = append(d.First5PageTextLengths, trimmed)
		}
		if trimmed > d.MaxPageTextLength {
			d.MaxPageTextLength = trimmed
		}
	}
	if len(doc.Pages) > 0 {
		d.SampleTextLenFirstPage = utf8.RuneCountInString(doc.Pages[0].Text)
	}
	return d
}
