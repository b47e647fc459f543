package manifest

import (
	"regexp"
	"strconv"
	"strings"

	"shipmark/internal/domain"
)

// quantityMarker is the fixed numeric suffix that signals a quantity value
// somewhere on the page.
const quantityMarker = ".0000"

var (
	inlineQtyRe   = regexp.MustCompile(`(\d+)\s*\.0000`)
	trailingQtyRe = regexp.MustCompile(`\s+(\d+)$`)
	nameStopRe    = regexp.MustCompile(`\d+\.0000|\b\d{12,14}\b`)
	digitsOnlyRe  = regexp.MustCompile(`^\d+$`)
	stripBlankRe  = regexp.MustCompile(`[\s\*]`)
	dateSuffixRe  = regexp.MustCompile(`202\d{5}.*`)

	// Document-date patterns, checked in priority order.
	dateCompactRe  = regexp.MustCompile(`\b(20\d{2})(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])\b`)
	dateDMYSlashRe = regexp.MustCompile(`\b(0[1-9]|[12]\d|3[01])/(0[1-9]|1[0-2])/(20\d{2})\b`)
	dateStandardRe = regexp.MustCompile(`\b(20\d{2})[./-](0[1-9]|1[0-2])[./-](0[1-9]|[12]\d|3[01])\b`)
)

// BarcodeMode selects how the region after the quantity marker is read.
type BarcodeMode int

const (
	// BarcodeScan walks the lines after the marker and takes the first
	// candidate by priority: starred line, 12-15 digit run, product-number
	// echo.
	BarcodeScan BarcodeMode = iota
	// BarcodeJoin concatenates every non-skipped line after the marker and
	// strips whitespace and asterisks from the result. Used by zones whose
	// manifests wrap the barcode across lines.
	BarcodeJoin
)

// Profile is the per-zone extraction configuration. The heuristics are
// shared; only these knobs vary between business lines.
type Profile struct {
	Barcode BarcodeMode
	// StripDateSuffix removes a trailing packing-date run (202xxxxx...) and
	// trailing hyphens from a joined barcode before use.
	StripDateSuffix bool
	// FallbackToProductNo substitutes the product number when no barcode is
	// found, instead of the (N/A) sentinel. Inspection checklists need a
	// scannable value on every row.
	FallbackToProductNo bool
	// ExtractDate pulls a document date out of the full page text.
	ExtractDate bool
}

// ZoneProfile returns the upload-pipeline extraction profile for a zone.
func ZoneProfile(zone domain.Zone) Profile {
	switch zone {
	case domain.ZoneYummy:
		return Profile{Barcode: BarcodeScan, ExtractDate: true}
	case domain.ZoneHomey:
		return Profile{Barcode: BarcodeScan}
	default: // anymall, hellobear
		return Profile{Barcode: BarcodeJoin}
	}
}

// InspectionProfile returns the extraction profile used when building an
// inspection checklist, identical across zones.
func InspectionProfile() Profile {
	return Profile{Barcode: BarcodeJoin, StripDateSuffix: true, FallbackToProductNo: true}
}

// Extract applies the ordered extraction rules to one page's token list.
// It never fails: missing markers, names, or barcodes degrade to defaults.
// pageText is the untokenized page text, used only for date detection.
func Extract(lines []string, pageText string, p Profile) domain.ExtractedFields {
	f := domain.ExtractedFields{
		ProductNo: domain.ProductUnknown,
		Quantity:  1,
		Barcode:   domain.BarcodeNA,
		Date:      "N/A",
	}
	if len(lines) == 0 {
		return f
	}

	// Rule 1: the first token is the product number, verbatim.
	f.ProductNo = lines[0]

	// Rule 2: quantity from the first marker line, with previous-line
	// fallbacks. May rewrite the previous line when a trailing count is
	// split off, so work on a copy.
	work := make([]string, len(lines))
	copy(work, lines)
	qty, markerIdx := extractQuantity(work)
	f.Quantity = qty

	// Rules 3-4: name is the token run between product number and marker.
	f.Name = extractName(work, markerIdx)

	// Rule 5: barcode from the region after the marker.
	if bc := extractBarcode(work, markerIdx, f.ProductNo, p); bc != "" {
		f.Barcode = bc
	} else if p.FallbackToProductNo {
		f.Barcode = f.ProductNo
	}

	// Rule 6: document date, for manifests that carry one.
	if p.ExtractDate {
		f.Date = ExtractDate(pageText)
	}

	return f
}

// extractQuantity locates the marker line and resolves the quantity.
// Returns the quantity (>= 1) and the marker boundary index, or -1 when no
// marker line exists. A digits-only previous line becomes the boundary
// itself, so the barcode region starts at the marker line. A trailing count
// is cut off the previous line in place; cutting it truncates names that
// genuinely end in a number, and that heuristic risk is accepted.
func extractQuantity(work []string) (int, int) {
	for idx, line := range work {
		if !strings.Contains(line, quantityMarker) {
			continue
		}
		if m := inlineQtyRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
				return v, idx
			}
		}
		if idx > 0 {
			prev := work[idx-1]
			if digitsOnlyRe.MatchString(prev) {
				if v, err := strconv.Atoi(prev); err == nil {
					return v, idx - 1
				}
			}
			if loc := trailingQtyRe.FindStringSubmatchIndex(prev); loc != nil {
				v, err := strconv.Atoi(prev[loc[2]:loc[3]])
				if err == nil {
					work[idx-1] = strings.TrimSpace(prev[:loc[0]])
					return v, idx
				}
			}
		}
		return 1, idx
	}
	return 1, -1
}

// extractName joins the tokens strictly between the product number and the
// marker line, skipping lines the quantity fallbacks consumed. Without a
// marker, a two-line page names the item on its second line; longer pages
// accumulate until a quantity or barcode shaped line appears.
func extractName(work []string, markerIdx int) string {
	if markerIdx > 1 {
		var parts []string
		for _, line := range work[1:markerIdx] {
			if line != "" {
				parts = append(parts, line)
			}
		}
		return strings.Join(parts, " ")
	}
	if markerIdx == -1 && len(work) > 1 {
		if len(work) == 2 {
			return work[1]
		}
		var parts []string
		for _, line := range work[1:] {
			if nameStopRe.MatchString(line) {
				break
			}
			parts = append(parts, line)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// skipBarcodeLine reports lines that can never carry a barcode: explicit
// N/A markers and page-number footers.
func skipBarcodeLine(line string) bool {
	return strings.Contains(line, "N/A") || strings.Contains(strings.ToUpper(line), "PAGE")
}

func extractBarcode(work []string, markerIdx int, productNo string, p Profile) string {
	switch p.Barcode {
	case BarcodeJoin:
		// Join variants only trust the region below an explicit marker.
		if markerIdx == -1 || markerIdx >= len(work)-1 {
			return ""
		}
		var b strings.Builder
		for _, line := range work[markerIdx+1:] {
			if skipBarcodeLine(line) {
				continue
			}
			b.WriteString(line)
		}
		bc := stripBlankRe.ReplaceAllString(b.String(), "")
		if p.StripDateSuffix {
			bc = dateSuffixRe.ReplaceAllString(bc, "")
			bc = strings.TrimRight(bc, "-")
		}
		return bc
	default:
		start := 0
		if markerIdx != -1 {
			start = markerIdx + 1
		}
		for _, line := range work[start:] {
			if skipBarcodeLine(line) {
				continue
			}
			clean := stripBlankRe.ReplaceAllString(line, "")
			switch {
			case strings.Contains(line, "*"):
				return clean
			case digitsOnlyRe.MatchString(clean) && len(clean) >= 12 && len(clean) <= 15:
				return clean
			case clean == productNo || clean == strings.ReplaceAll(productNo, "-", ""):
				return clean
			}
		}
		return ""
	}
}

// ExtractDate finds a calendar date anywhere in the page text, normalized to
// YYYY-MM-DD. Patterns are tried in priority order; absence yields the
// not-detected sentinel.
func ExtractDate(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if m := dateCompactRe.FindStringSubmatch(flat); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	if m := dateDMYSlashRe.FindStringSubmatch(flat); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	if m := dateStandardRe.FindStringSubmatch(flat); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	return domain.DateNotDetected
}
