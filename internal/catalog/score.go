package catalog

import (
	"strings"

	"shipmark/internal/domain"
)

// foodKeywords mark nutrition-bearing columns. A row with any of these
// populated can drive the full food label layout.
var foodKeywords = []string{"ingredient", "energy", "protein", "fat", "carb", "sodium", "serving"}

// cautionKeywords mark free-text warning columns.
var cautionKeywords = []string{"caution", "warning"}

// insectValueMarkers flag a label-type column value as the insect-warning
// variant.
var insectValueMarkers = []string{"蟲", "insect"}

// insectColumns are columns whose mere presence (non-blank) marks a row as
// insect-warning stock.
var insectColumns = map[string]bool{"features": true, "警告字眼": true}

// Classify buckets a row by the signal its columns carry, in descending
// richness: insect > food > caution > empty. Zero-valued nutrition cells do
// not count as food signal, but a literal "0" in a warning column still
// counts as caution text.
func Classify(row *Row) domain.RowStatus {
	if row == nil || len(row.Fields) == 0 {
		return domain.RowStatusEmpty
	}

	for _, k := range row.iterColumns() {
		kl := strings.ToLower(k)
		vl := strings.ToLower(strings.TrimSpace(row.Fields[k]))
		if vl == "" || vl == "nan" || vl == "0" || vl == "none" {
			continue
		}
		if strings.Contains(kl, "label") && containsAny(vl, insectValueMarkers) {
			return domain.RowStatusInsect
		}
		if insectColumns[kl] {
			return domain.RowStatusInsect
		}
	}

	for _, k := range row.iterColumns() {
		if !containsAny(strings.ToLower(k), foodKeywords) {
			continue
		}
		vl := strings.ToLower(strings.TrimSpace(row.Fields[k]))
		if vl != "" && vl != "nan" && vl != "0" && vl != "none" {
			return domain.RowStatusFood
		}
	}

	for _, k := range row.iterColumns() {
		if !containsAny(strings.ToLower(k), cautionKeywords) {
			continue
		}
		vl := strings.ToLower(strings.TrimSpace(row.Fields[k]))
		if vl != "" && vl != "nan" && vl != "none" {
			return domain.RowStatusCaution
		}
	}

	return domain.RowStatusEmpty
}

// iterColumns yields the row's columns in source order, falling back to map
// keys for rows constructed without a header (tests, ad hoc data).
func (r *Row) iterColumns() []string {
	if len(r.columns) > 0 {
		return r.columns
	}
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	return keys
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// CautionText returns the warning text a caution-only label should carry:
// the Cautions column when present, else the first caution/warning-named
// column in source order.
func CautionText(row *Row) string {
	if row == nil {
		return ""
	}
	if _, ok := row.Fields["Cautions"]; ok {
		return row.Get("Cautions")
	}
	for _, k := range row.iterColumns() {
		kl := strings.ToLower(k)
		if strings.Contains(kl, "caution") || strings.Contains(kl, "warning") {
			return row.Get(k)
		}
	}
	return ""
}
