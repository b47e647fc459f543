// Package catalog loads the master product reference table and answers
// lookups against it. The backing file has no fixed schema beyond a set of
// known column aliases, so alias resolution runs once per load and the rest
// of the pipeline only ever sees the normalized Row.
package catalog

import "strings"

// Column aliases, tried in order. The first header that matches wins.
var (
	productNoAliases = []string{"Product_No", "ProductCode", "Product No"}
	barcodeAliases   = []string{"Barcode"}
	nameAliases      = []string{"Name", "Description"}
	labelTypeAliases = []string{"Label_Type", "Label Type"}
)

// Row is one catalog record with its key columns normalized. Fields retains
// every raw column (trimmed header -> value) for the free-form nutrition and
// warning columns the renderers read directly.
type Row struct {
	ProductNo string
	Barcode   string
	Name      string
	LabelType string
	Fields    map[string]string

	// columns preserves the source header order so "first matching column"
	// rules stay deterministic.
	columns []string
}

// Columns returns the source header order.
func (r *Row) Columns() []string { return r.columns }

// Get returns the trimmed value of a raw column, or "" when absent. Values
// equal to the textual artifacts "nan"/"none" that spreadsheet round-trips
// leave behind are treated as blank.
func (r *Row) Get(key string) string {
	return cleanValue(r.Fields[key])
}

// GetAny returns the first non-blank value among the given raw columns.
func (r *Row) GetAny(keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// RowFromMap builds an ad hoc Row from raw column values, as supplied by the
// on-demand render endpoint. Column order is whatever map iteration yields;
// callers that depend on source ordering must go through a loaded snapshot.
func RowFromMap(fields map[string]string) *Row {
	row := &Row{Fields: fields}
	row.ProductNo = strings.TrimSpace(row.GetAny(productNoAliases...))
	row.Barcode = strings.TrimSpace(row.GetAny(barcodeAliases...))
	row.Name = row.GetAny(nameAliases...)
	row.LabelType = row.GetAny(labelTypeAliases...)
	return row
}

// cleanValue trims a raw cell and blanks out spreadsheet NaN artifacts.
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "nan", "none":
		return ""
	}
	return v
}

// resolveAlias finds the header matching one of the known aliases, in alias
// priority order.
func resolveAlias(headers []string, aliases []string) (string, bool) {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[h] = true
	}
	for _, a := range aliases {
		if set[a] {
			return a, true
		}
	}
	return "", false
}

// buildRows normalizes a header row plus data rows into Rows. Rows without
// any resolvable product number column still load; their ProductNo is empty
// and they simply never match.
func buildRows(headers []string, records [][]string) []Row {
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	productCol, _ := resolveAlias(headers, productNoAliases)
	barcodeCol, _ := resolveAlias(headers, barcodeAliases)
	nameCol, _ := resolveAlias(headers, nameAliases)
	labelCol, _ := resolveAlias(headers, labelTypeAliases)

	columns := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			columns = append(columns, h)
		}
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			fields[h] = rec[i]
		}
		row := Row{Fields: fields, columns: columns}
		if productCol != "" {
			row.ProductNo = strings.TrimSpace(fields[productCol])
		}
		if barcodeCol != "" {
			row.Barcode = strings.TrimSpace(fields[barcodeCol])
		}
		row.Name = cleanValue(fields[nameCol])
		if row.Name == "" && nameCol != "Description" {
			row.Name = cleanValue(fields["Description"])
		}
		if labelCol != "" {
			row.LabelType = cleanValue(fields[labelCol])
		}
		rows = append(rows, row)
	}
	return rows
}
