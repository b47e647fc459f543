// Package pdf adapts the PDF collaborators behind the ports the pipeline
// consumes: per-page text extraction and filtered-document assembly.
package pdf

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"shipmark/internal/domain"
	"shipmark/internal/port"
)

type textExtractor struct{}

// NewTextExtractor returns the ledongthuc/pdf backed TextExtractor.
func NewTextExtractor() port.TextExtractor {
	return textExtractor{}
}

// ExtractPages returns one PageText per source page, in order. Pages the
// library cannot read (scanned images, malformed content streams) come back
// with empty text; only a document that cannot be opened at all fails.
func (textExtractor) ExtractPages(doc []byte) ([]port.PageText, error) {
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	pages := make([]port.PageText, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		pages = append(pages, port.PageText{Number: i, Text: pageText(r, i)})
	}
	return pages, nil
}

// pageText extracts one page's text row by row. The library panics on some
// malformed pages; those degrade to an empty page rather than failing the
// document.
func pageText(r *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("pdf.ExtractPages: page %d unreadable: %v", num, rec)
			text = ""
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return ""
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		log.Printf("pdf.ExtractPages: page %d: %v", num, err)
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteString("\n")
	}
	return b.String()
}
