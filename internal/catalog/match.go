package catalog

import (
	"sort"
	"strings"

	"shipmark/internal/domain"
)

// Match finds the best catalog row for a product number, falling back to an
// exact barcode match when the product number finds nothing. Returns nil
// when the catalog has no matching row.
func Match(snap *Snapshot, productNo, barcode string) *Row {
	if snap == nil {
		return nil
	}

	var candidates []*Row
	for i := range snap.Rows {
		if snap.Rows[i].ProductNo != "" && snap.Rows[i].ProductNo == strings.TrimSpace(productNo) {
			candidates = append(candidates, &snap.Rows[i])
		}
	}
	if len(candidates) == 0 && barcode != "" && barcode != domain.BarcodeNA {
		for i := range snap.Rows {
			if snap.Rows[i].Barcode != "" && snap.Rows[i].Barcode == strings.TrimSpace(barcode) {
				candidates = append(candidates, &snap.Rows[i])
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	best := BestRows(candidates)
	return best[0]
}

// BestRows orders candidate rows by richness score descending (stable, so
// source order breaks ties) and drops later rows that repeat an earlier
// row's product number.
func BestRows(rows []*Row) []*Row {
	type scored struct {
		row   *Row
		score int
	}
	ss := make([]scored, len(rows))
	for i, r := range rows {
		ss[i] = scored{row: r, score: Classify(r).Score()}
	}
	sort.SliceStable(ss, func(i, j int) bool { return ss[i].score > ss[j].score })

	seen := make(map[string]bool, len(ss))
	out := make([]*Row, 0, len(ss))
	for _, s := range ss {
		if s.row.ProductNo != "" {
			if seen[s.row.ProductNo] {
				continue
			}
			seen[s.row.ProductNo] = true
		}
		out = append(out, s.row)
	}
	return out
}

// Search returns rows whose product number, barcode, or name contains the
// query (case-insensitive), richness-ordered and deduplicated.
func Search(snap *Snapshot, query string) []*Row {
	if snap == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []*Row
	for i := range snap.Rows {
		r := &snap.Rows[i]
		if strings.Contains(strings.ToLower(r.ProductNo), q) ||
			strings.Contains(strings.ToLower(r.Barcode), q) ||
			strings.Contains(strings.ToLower(r.Name), q) {
			hits = append(hits, r)
		}
	}
	if len(hits) == 0 {
		return nil
	}
	return BestRows(hits)
}
