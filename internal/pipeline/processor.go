// Package pipeline coordinates the two stages of an analysis request:
// decode (bytes -> pages) then analyze (pages -> scored result).
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/esgsentinel/sentinel/internal/analysis"
	"github.com/esgsentinel/sentinel/internal/decode"
)

// Processor runs decode then analysis for one uploaded document.
type Processor struct {
	Decoder  decode.Extractor
	Analyzer *analysis.Analyzer
	Logger   *slog.Logger
}

func NewProcessor(dec decode.Extractor, an *analysis.Analyzer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Decoder: dec, Analyzer: an, Logger: logger}
}

// Process decodes the uploaded bytes and runs the full analysis.
// Decode rejections (unreadable document) propagate to the caller;
// everything past that point is infallible.
func (p *Processor) Process(ctx context.Context, filename string, data []byte) (analysis.Result, error) {
	analysisID := uuid.New()

	doc, err := p.Decoder.Extract(ctx, filename, data)
	if err != nil {
		p.Logger.Error("processor.decode.failed", "analysis_id", analysisID, "filename", filename, "err", err)
		return analysis.Result{}, err
	}
	p.Logger.Info("processor.decode.ok",
		"analysis_id", analysisID,
		"filename", filename,
		"pages", doc.PageCount(),
		"text_length", doc.TextLength(),
	)

	res := p.Analyzer.Analyze(doc)

	// Self-check against the response contract; a violation is an
	// assembler bug and must not fail the request.
	if err := analysis.ValidateResult(res); err != nil {
		p.Logger.Warn("processor.contract.violation", "analysis_id", analysisID, "err", err)
	}

	p.Logger.Info("processor.analyze.ok",
		"analysis_id", analysisID,
		"confidence", res.Scoring.Confidence,
		"coverage_pct", res.Scoring.CoveragePct,
		"targets_detected", res.Scoring.TargetsDetected,
		"keyword_hits", res.Scoring.KeywordHits,
		"fallback_mode", res.Scoring.FallbackMode,
	)
	return res, nil
}
