// Package export renders an analysis result as an XLSX workbook for
// reviewers who want the evidence table outside the UI.
package export

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/esgsentinel/sentinel/internal/analysis"
)

// Service produces XLSX bytes for analysis exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	summarySheet  = "Summary"
	evidenceSheet = "Evidence"
)

// AnalysisXLSX returns a workbook with a Summary sheet (targets and
// scoring) and an Evidence sheet (one row per located occurrence).
func (s *Service) AnalysisXLSX(res analysis.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.close.failed", "err", err)
		}
	}()

	f.SetSheetName(f.GetSheetName(0), summarySheet)
	if _, err := f.NewSheet(evidenceSheet); err != nil {
		return nil, fmt.Errorf("create evidence sheet: %w", err)
	}

	if err := s.writeSummary(f, res); err != nil {
		return nil, err
	}
	if err := s.writeEvidence(f, res); err != nil {
		return nil, err
	}

	if idx, err := f.GetSheetIndex(summarySheet); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"filename", res.DocumentMetadata.SourceFilename,
		"evidence_rows", len(res.Explainability.Evidence),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, res analysis.Result) error {
	rows := [][]any{
		{"Source Filename", res.DocumentMetadata.SourceFilename},
		{"Sustainability Targets", strings.Join(res.SustainabilityTargets, "; ")},
		{"Matched Keywords", strings.Join(res.Explainability.MatchedKeywords, "; ")},
		{"Confidence", res.Scoring.Confidence},
		{"Coverage %", res.Scoring.CoveragePct},
		{"Parse Success %", res.Scoring.ParseSuccessPct},
		{"Pages Total", res.Scoring.PagesTotal},
		{"Pages Failed", res.Scoring.PagesFailed},
		{"Pages With Text", res.Scoring.PagesWithText},
		{"Fallback Mode", res.Scoring.FallbackMode},
		{"Text Extracted", res.Scoring.TextExtracted},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("summary cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func (s *Service) writeEvidence(f *excelize.File, res analysis.Result) error {
	headers := []string{"Keyword", "Page", "Snippet"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(evidenceSheet, cell, h); err != nil {
			return fmt.Errorf("evidence header %s: %w", cell, err)
		}
	}
	for r, ev := range res.Explainability.Evidence {
		values := []any{ev.Keyword, ev.Page, ev.Snippet}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(evidenceSheet, cell, v); err != nil {
				return fmt.Errorf("evidence cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
