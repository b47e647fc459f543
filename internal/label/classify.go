// Package label decides what kind of physical label a line item needs and
// renders the matching print document. Different business lines encode
// "must print" differently in their manifests, so classification is a
// per-zone policy table over one shared pipeline, not a universal rule.
package label

import (
	"strings"
	"unicode"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
)

// Classify maps a matched catalog row (or its absence) plus the extracted
// barcode shape to the label type for the item's zone.
func Classify(zone domain.Zone, f domain.ExtractedFields, row *catalog.Row) domain.LabelType {
	switch zone {
	case domain.ZoneHomey:
		return classifyFullCatalog(f, row)
	case domain.ZoneAnymall:
		// Print only when the manifest echoes the product number as the
		// barcode.
		if barcodeUsable(f.Barcode) && f.Barcode == f.ProductNo {
			return domain.LabelRepack
		}
		return domain.LabelNoPrint
	case domain.ZoneHelloBear:
		// Print only for barcodes carrying at least one letter.
		if barcodeUsable(f.Barcode) && containsAlpha(f.Barcode) {
			return domain.LabelRepack
		}
		return domain.LabelNoPrint
	case domain.ZoneYummy:
		switch catalog.Classify(row) {
		case domain.RowStatusFood:
			return domain.LabelFood
		case domain.RowStatusCaution:
			return domain.LabelCautionOnly
		}
		return domain.LabelNoPrint
	}
	return domain.LabelNoPrint
}

// classifyFullCatalog implements the full-catalog zone policy: the catalog's
// label-type column decides first, then the barcode shape selects between a
// repack label and a standard pre-printed one.
func classifyFullCatalog(f domain.ExtractedFields, row *catalog.Row) domain.LabelType {
	var labelField string
	if row != nil {
		labelField = row.LabelType
	}
	lower := strings.ToLower(labelField)

	switch {
	case strings.Contains(lower, "food"):
		return domain.LabelFood
	case strings.Contains(labelField, "蟲") || strings.Contains(lower, "insect"):
		return domain.LabelInsectWarning
	case endsInAlpha(f.Barcode) && barcodeUsable(f.Barcode):
		return domain.LabelRepack
	case !barcodeUsable(f.Barcode) || f.Barcode == f.ProductNo:
		return domain.LabelRepack
	default:
		return domain.LabelNormal
	}
}

// barcodeUsable reports whether the extracted barcode is an actual value
// rather than blank or a not-found sentinel.
func barcodeUsable(bc string) bool {
	return strings.TrimSpace(bc) != "" && bc != domain.BarcodeNA && bc != domain.DateNotDetected
}

// containsAlpha matches Latin letters only; CJK characters in a barcode do
// not make it letter-bearing for the hellobear policy.
func containsAlpha(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
	}
	return false
}

// endsInAlpha accepts any letter, Latin or CJK.
func endsInAlpha(s string) bool {
	rs := []rune(s)
	if len(rs) == 0 {
		return false
	}
	return unicode.IsLetter(rs[len(rs)-1])
}
