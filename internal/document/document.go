// Package document holds the page-indexed text representation the
// analysis engine operates on. A Document is produced once by the
// decoding collaborator and is not mutated afterwards; its lifetime is
// a single analysis call.
package document

import (
	"strings"
	"unicode/utf8"
)

// Page is one physical page of the source document. Text is empty when
// nothing was extracted. DecodeFailed is set by the decoder when the
// page could not be extracted at all; an empty Text with DecodeFailed
// false means the page decoded cleanly but yielded no text (image-only
// pages do this).
type Page struct {
	Text         string
	DecodeFailed bool
}

// Document is an ordered page sequence plus the original filename.
// Pages are 0-indexed here; all output page numbers are 1-based.
type Document struct {
	Filename string
	Pages    []Page
}

// New builds a Document from (text, decodeFailed) pairs in physical
// page order.
func New(filename string, pages []Page) Document {
	return Document{Filename: filename, Pages: pages}
}

// PageCount returns the number of physical pages.
func (d Document) PageCount() int {
	return len(d.Pages)
}

// FullText joins all page texts with a newline, in page order.
func (d Document) FullText() string {
	texts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}

// TextLength returns the character count of the concatenated page text.
func (d Document) TextLength() int {
	if len(d.Pages) == 0 {
		return 0
	}
	return utf8.RuneCountInString(d.FullText())
}
