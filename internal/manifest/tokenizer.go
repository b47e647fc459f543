// Package manifest recovers structured line items from the loosely-tabular
// text of logistics manifest pages. One page describes one shipment line;
// the text has no reliable schema, so extraction is an ordered list of
// heuristics that degrade to sentinel values instead of failing.
package manifest

import "strings"

// imagePlaceholderPrefix marks lines the text extractor injects where an
// embedded image sits on the page.
const imagePlaceholderPrefix = "[Image"

// Tokenize splits one page's extracted text into trimmed, non-empty lines,
// dropping image-placeholder lines. An empty result means the page carries
// nothing usable and must be skipped entirely.
func Tokenize(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, imagePlaceholderPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
