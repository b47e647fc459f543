package manifest

import "shipmark/internal/domain"

// Merge folds items sharing a product number into one logical item:
// quantities sum, IsDuplicate is set, and source pages accumulate. First-seen
// ordering is preserved so checklist sequence numbers stay stable.
func Merge(items []domain.LineItem) []domain.LineItem {
	byProduct := make(map[string]int, len(items))
	merged := make([]domain.LineItem, 0, len(items))
	for _, it := range items {
		idx, seen := byProduct[it.ProductNo]
		if !seen {
			byProduct[it.ProductNo] = len(merged)
			merged = append(merged, it)
			continue
		}
		merged[idx].Quantity += it.Quantity
		merged[idx].IsDuplicate = true
		merged[idx].SourcePages = append(merged[idx].SourcePages, it.SourcePages...)
	}
	return merged
}

// DuplicateReport surfaces every product number that contributed more than
// one page, without altering the per-page items. Entries follow first-seen
// order and carry the ordered list of contributing pages.
func DuplicateReport(items []domain.LineItem) []domain.DuplicateEntry {
	pages := make(map[string][]int, len(items))
	var order []string
	for _, it := range items {
		if _, seen := pages[it.ProductNo]; !seen {
			order = append(order, it.ProductNo)
		}
		pages[it.ProductNo] = append(pages[it.ProductNo], it.SourcePages...)
	}

	var report []domain.DuplicateEntry
	for _, pno := range order {
		if len(pages[pno]) > 1 {
			report = append(report, domain.DuplicateEntry{
				ProductNo: pno,
				Count:     len(pages[pno]),
				Pages:     pages[pno],
			})
		}
	}
	return report
}
