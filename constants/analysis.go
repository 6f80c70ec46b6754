package constants

// Fixed parameters of the evidence/scoring engine.
const (
	// DefaultContextWindow is the number of characters kept on each side
	// of a keyword occurrence when building an evidence snippet.
	DefaultContextWindow = 80

	// EvidenceCap is the hard global limit on evidence entries per
	// analysis. It applies across the whole document, not per keyword.
	EvidenceCap = 25

	// MinTextChars is the readability floor: a page whose trimmed text is
	// shorter than this counts as having no usable text, even when the
	// decoder reported no error (image-only pages decode "cleanly").
	MinTextChars = 40
)

// Fixed demo values echoed in every analysis response.
const (
	RatchetStepBps        = 2.5
	VerificationFrequency = "Annual"

	PricingNotional = 500_000_000
	PricingCurrency = "USD"

	FacilityType = "Sustainability-Linked Revolving Credit Facility (demo)"
	GoverningLaw = "English Law (demo)"
	LMAStandard  = "v4.2 ESG Rider (demo)"

	ExtractionNote = "Some PDFs are image-only or use embedded fonts; if coverage is 0%, OCR is required for snippet evidence."
)
