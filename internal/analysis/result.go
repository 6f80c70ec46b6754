package analysis

// Evidence is one located keyword occurrence with surrounding context.
// Page is 1-based; Snippet is newline-free and trimmed.
type Evidence struct {
	Keyword string `json:"keyword"`
	Page    int    `json:"page"`
	Snippet string `json:"snippet"`
}

// Explainability carries the matched keywords and their text evidence.
type Explainability struct {
	MatchedKeywords []string   `json:"matched_keywords"`
	Evidence        []Evidence `json:"evidence"`
}

// DocumentMetadata is pass-through metadata: the original filename plus
// fixed demo fields.
type DocumentMetadata struct {
	SourceFilename string `json:"source_filename"`
	FacilityType   string `json:"facility_type"`
	GoverningLaw   string `json:"governing_law"`
	LMAStandard    string `json:"lma_standard"`
}

// RatchetConfig is a derived config echo.
type RatchetConfig struct {
	StepBps               float64 `json:"step_bps"`
	VerificationFrequency string  `json:"verification_frequency"`
	MaxSteps              int     `json:"max_steps"`
}

// PricingAssumptions holds fixed demo pricing constants.
type PricingAssumptions struct {
	Notional int64  `json:"notional"`
	Currency string `json:"currency"`
}

// ExtractionWarnings summarizes how much of the document could be read.
type ExtractionWarnings struct {
	PagesFailed int    `json:"pages_failed"`
	TextLength  int    `json:"text_length"`
	Note        string `json:"note"`
}

// Scoring bundles the derived metrics and the confidence heuristic.
type Scoring struct {
	Confidence      int     `json:"confidence"`
	CoveragePct     float64 `json:"coverage_pct"`
	ParseSuccessPct float64 `json:"parse_success_pct"`
	PagesTotal      int     `json:"pages_total"`
	PagesFailed     int     `json:"pages_failed"`
	PagesWithText   int     `json:"pages_with_text"`
	TargetsDetected int     `json:"targets_detected"`
	KeywordHits     int     `json:"keyword_hits"`
	FallbackMode    bool    `json:"fallback_mode"`
	TextExtracted   bool    `json:"text_extracted"`
}

// Debug exposes raw per-page text lengths for troubleshooting
// extraction problems from the UI.
type Debug struct {
	First5PageTextLengths  []int `json:"first5_page_text_lengths"`
	MaxPageTextLength      int   `json:"max_page_text_length"`
	SampleTextLenFirstPage int   `json:"sample_text_len_first_page"`
}

// Result is the full analysis output. It is assembled once per request,
// never mutated afterwards, and discarded after the response is sent.
type Result struct {
	Explainability        Explainability     `json:"explainability"`
	DocumentMetadata      DocumentMetadata   `json:"document_metadata"`
	SustainabilityTargets []string           `json:"sustainability_targets"`
	RatchetConfig         RatchetConfig      `json:"ratchet_config"`
	PricingAssumptions    PricingAssumptions `json:"pricing_assumptions"`
	ExtractionWarnings    ExtractionWarnings `json:"extraction_warnings"`
	Scoring               Scoring            `json:"scoring"`
	Debug                 Debug              `json:"debug"`
}
