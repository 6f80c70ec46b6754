// Package decode turns uploaded document bytes into the per-page text
// model the analysis engine consumes. Per-page failures are swallowed
// and flagged, never raised: one unreadable page must not abort the
// document, and the analysis core never sees an error from here except
// a whole-document rejection.
package decode

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"

	"github.com/esgsentinel/sentinel/internal/common"
	"github.com/esgsentinel/sentinel/internal/document"
)

// Extractor is the decoding collaborator: raw bytes in, ordered
// (text, decodeFailed) pages out.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (document.Document, error)
}

// PDFExtractor extracts the text layer of a PDF with the pure-Go
// ledongthuc/pdf reader. No OCR: image-only pages simply yield no text.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// IsPDF checks the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// Extract decodes every page of the PDF. An unreadable or corrupt file
// returns an invalid-document error before any page is produced;
// individual page failures are reported only through the DecodeFailed
// flag.
func (e *PDFExtractor) Extract(ctx context.Context, filename string, data []byte) (document.Document, error) {
	if !IsPDF(data) {
		return document.Document{}, common.InvalidDocumentError("file is not a PDF", nil)
	}

	reader, err := newReader(data)
	if err != nil {
		return document.Document{}, common.InvalidDocumentError("invalid PDF or unreadable file", err)
	}

	total := reader.NumPage()
	pages := make([]document.Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return document.Document{}, err
		}
		text, failed := extractPage(reader, i)
		if failed {
			e.logger.Warn("decode.page.failed", "filename", filename, "page", i)
		}
		pages = append(pages, document.Page{Text: text, DecodeFailed: failed})
	}

	return document.New(filename, pages), nil
}

// newReader opens the PDF, attempting an empty password for encrypted
// files. The pdf library panics on some malformed inputs, so the panic
// is converted into an error here.
func newReader(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()
	return pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), emptyPassword)
}

func emptyPassword() string { return "" }

// extractPage pulls the plain text of one page. Errors and panics both
// collapse to a failed, empty page.
func extractPage(reader *pdf.Reader, num int) (text string, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			text, failed = "", true
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return "", true
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", true
	}
	return text, false
}
