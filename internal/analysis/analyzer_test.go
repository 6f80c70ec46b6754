package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/esgsentinel/sentinel/constants"
	"github.com/esgsentinel/sentinel/internal/document"
)

func TestAnalyze_EmptyDocument(t *testing.T) {
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(document.New("empty.pdf", nil))

	s := res.Scoring
	if s.PagesTotal != 0 || s.CoveragePct != 0.0 || s.ParseSuccessPct != 0.0 {
		t.Errorf("metrics = %d/%v/%v, want 0/0/0", s.PagesTotal, s.CoveragePct, s.ParseSuccessPct)
	}
	if !s.FallbackMode {
		t.Error("FallbackMode = false, want true")
	}
	if len(res.SustainabilityTargets) != 3 {
		t.Fatalf("targets = %v, want the 3 fallback targets", res.SustainabilityTargets)
	}
	// True family count is 0 under fallback, but the target term
	// counts the substituted list: 0*70 + 0*10 + 3*5 = 15.
	if s.Confidence != 15 {
		t.Errorf("Confidence = %d, want 15", s.Confidence)
	}
	if len(res.Explainability.MatchedKeywords) != 0 || len(res.Explainability.Evidence) != 0 {
		t.Error("fallback must not invent matched keywords or evidence")
	}
	if s.TargetsDetected != 3 || s.KeywordHits != 0 {
		t.Errorf("TargetsDetected = %d, KeywordHits = %d, want 3 and 0", s.TargetsDetected, s.KeywordHits)
	}
	if res.RatchetConfig.MaxSteps != 3 {
		t.Errorf("MaxSteps = %d, want 3", res.RatchetConfig.MaxSteps)
	}
}

func TestAnalyze_CarbonPage(t *testing.T) {
	doc := document.New("report.pdf", []document.Page{
		{Text: ""},
		{Text: "Our Scope 1 and Scope 2 emissions fell 10%."},
		{Text: ""},
	})
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(doc)

	s := res.Scoring
	if s.PagesWithText != 1 {
		t.Errorf("PagesWithText = %d, want 1", s.PagesWithText)
	}
	if s.CoveragePct != 33.3 {
		t.Errorf("CoveragePct = %v, want 33.3", s.CoveragePct)
	}
	if s.ParseSuccessPct != 100.0 {
		t.Errorf("ParseSuccessPct = %v, want 100.0", s.ParseSuccessPct)
	}
	if s.FallbackMode {
		t.Error("FallbackMode = true, want false")
	}

	wantTargets := []string{"Scope 1 & 2 Greenhouse Gas Emissions Reduction"}
	if !reflect.DeepEqual(res.SustainabilityTargets, wantTargets) {
		t.Errorf("targets = %v, want %v", res.SustainabilityTargets, wantTargets)
	}

	wantMatched := []string{"carbon", "decarbon", "emission", "ghg", "scope 1", "scope 2"}
	if !reflect.DeepEqual(res.Explainability.MatchedKeywords, wantMatched) {
		t.Errorf("matched = %v, want %v", res.Explainability.MatchedKeywords, wantMatched)
	}
	if s.KeywordHits != 6 {
		t.Errorf("KeywordHits = %d, want 6", s.KeywordHits)
	}

	// One entry per occurrence on page 2, in catalog keyword order.
	var kws []string
	for _, ev := range res.Explainability.Evidence {
		if ev.Page != 2 {
			t.Errorf("evidence page = %d, want 2", ev.Page)
		}
		kws = append(kws, ev.Keyword)
	}
	wantKws := []string{"emission", "scope 1", "scope 2"}
	if !reflect.DeepEqual(kws, wantKws) {
		t.Errorf("evidence keywords = %v, want %v", kws, wantKws)
	}

	// 1/3 coverage, 1 family, 1 target: round(23.33 + 10 + 5) = 38.
	if s.Confidence != 38 {
		t.Errorf("Confidence = %d, want 38", s.Confidence)
	}
	// Pages joined with newlines: 0 + 43 + 0 chars plus two separators.
	if res.ExtractionWarnings.TextLength != 45 {
		t.Errorf("TextLength = %d, want 45", res.ExtractionWarnings.TextLength)
	}
	if res.RatchetConfig.MaxSteps != 1 {
		t.Errorf("MaxSteps = %d, want 1", res.RatchetConfig.MaxSteps)
	}
	if res.DocumentMetadata.SourceFilename != "report.pdf" {
		t.Errorf("SourceFilename = %q", res.DocumentMetadata.SourceFilename)
	}
}

func TestAnalyze_FallbackWithReadableText(t *testing.T) {
	// Readable document with no family hit: coverage contributes to
	// confidence, fallback supplies the targets.
	doc := document.New("memo.pdf", []document.Page{
		{Text: strings.Repeat("general corporate prose ", 5)},
	})
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(doc)

	if !res.Scoring.FallbackMode {
		t.Fatal("FallbackMode = false, want true")
	}
	// 1.0*70 + 0*10 + 3*5 = 85.
	if res.Scoring.Confidence != 85 {
		t.Errorf("Confidence = %d, want 85", res.Scoring.Confidence)
	}
	if len(res.Explainability.Evidence) != 0 {
		t.Error("fallback must not produce evidence")
	}
	if !res.Scoring.TextExtracted {
		t.Error("TextExtracted = false, want true")
	}
}

func TestAnalyze_DecodeFailedPage(t *testing.T) {
	doc := document.New("scan.pdf", []document.Page{{Text: "", DecodeFailed: true}})
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(doc)

	s := res.Scoring
	if s.PagesFailed != 1 || s.ParseSuccessPct != 0.0 {
		t.Errorf("PagesFailed = %d, ParseSuccessPct = %v, want 1 and 0.0", s.PagesFailed, s.ParseSuccessPct)
	}
	if s.PagesWithText != 0 || s.CoveragePct != 0.0 || s.TextExtracted {
		t.Errorf("PagesWithText = %d, CoveragePct = %v, TextExtracted = %v", s.PagesWithText, s.CoveragePct, s.TextExtracted)
	}
	if res.ExtractionWarnings.PagesFailed != 1 {
		t.Errorf("warnings PagesFailed = %d, want 1", res.ExtractionWarnings.PagesFailed)
	}
}

func TestAnalyze_EvidenceCapEndToEnd(t *testing.T) {
	doc := document.New("water.pdf", []document.Page{
		{Text: strings.Repeat("water ", 30)},
	})
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(doc)

	if len(res.Explainability.Evidence) != constants.EvidenceCap {
		t.Errorf("evidence = %d entries, want %d", len(res.Explainability.Evidence), constants.EvidenceCap)
	}
}

func TestAnalyze_DebugBlock(t *testing.T) {
	doc := document.New("dbg.pdf", []document.Page{
		{Text: "  ab  "},
		{Text: strings.Repeat("x", 60)},
	})
	res := NewAnalyzer(constants.DefaultContextWindow).Analyze(doc)

	want := []int{2, 60}
	if !reflect.DeepEqual(res.Debug.First5PageTextLengths, want) {
		t.Errorf("First5PageTextLengths = %v, want %v", res.Debug.First5PageTextLengths, want)
	}
	if res.Debug.MaxPageTextLength != 60 {
		t.Errorf("MaxPageTextLength = %d, want 60", res.Debug.MaxPageTextLength)
	}
	if res.Debug.SampleTextLenFirstPage != 6 {
		t.Errorf("SampleTextLenFirstPage = %d, want 6", res.Debug.SampleTextLenFirstPage)
	}
}

func TestAnalyze_ResultMeetsContract(t *testing.T) {
	docs := []document.Document{
		document.New("empty.pdf", nil),
		document.New("report.pdf", []document.Page{
			{Text: "Our Scope 1 and Scope 2 emissions fell 10%. Water usage is down."},
			{Text: "", DecodeFailed: true},
		}),
		document.New("cap.pdf", []document.Page{{Text: strings.Repeat("water ", 40)}}),
	}
	an := NewAnalyzer(constants.DefaultContextWindow)
	for _, doc := range docs {
		if err := ValidateResult(an.Analyze(doc)); err != nil {
			t.Errorf("ValidateResult(%s) = %v", doc.Filename, err)
		}
	}
}
