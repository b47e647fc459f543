package port

// PageText is the raw text recovered from one source page. Number is
// 1-based. A page with no extractable text is reported with empty Text so
// page numbering stays aligned with the source document.
type PageText struct {
	Number int
	Text   string
}

// TextExtractor turns document bytes into per-page text. It is treated as a
// black box: pages it cannot read come back empty rather than as errors.
// Only a document that cannot be opened at all fails the call.
type TextExtractor interface {
	ExtractPages(doc []byte) ([]PageText, error)
}

// PageFilter assembles a copy of the source document containing only the
// selected pages (1-based, ascending).
type PageFilter interface {
	KeepPages(doc []byte, pages []int) ([]byte, error)
}
