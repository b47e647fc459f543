package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipmark/internal/domain"
	"shipmark/internal/manifest"
)

func pageItem(productNo string, qty, page int) domain.LineItem {
	return domain.LineItem{
		ProductNo:   productNo,
		Quantity:    qty,
		SourcePages: []int{page},
	}
}

func TestMerge_SumsQuantitiesFirstSeenOrder(t *testing.T) {
	items := []domain.LineItem{
		pageItem("A-100", 2, 1),
		pageItem("B-200", 1, 2),
		pageItem("A-100", 3, 3),
	}

	merged := manifest.Merge(items)

	assert.Len(t, merged, 2)
	assert.Equal(t, "A-100", merged[0].ProductNo)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.True(t, merged[0].IsDuplicate)
	assert.Equal(t, []int{1, 3}, merged[0].SourcePages)

	assert.Equal(t, "B-200", merged[1].ProductNo)
	assert.Equal(t, 1, merged[1].Quantity)
	assert.False(t, merged[1].IsDuplicate)
}

func TestMerge_NoDuplicates(t *testing.T) {
	items := []domain.LineItem{pageItem("A-100", 1, 1), pageItem("B-200", 2, 2)}
	merged := manifest.Merge(items)
	assert.Len(t, merged, 2)
	for _, it := range merged {
		assert.False(t, it.IsDuplicate)
	}
}

func TestDuplicateReport(t *testing.T) {
	items := []domain.LineItem{
		pageItem("A-100", 1, 1),
		pageItem("B-200", 1, 2),
		pageItem("A-100", 1, 3),
		pageItem("A-100", 1, 4),
	}

	report := manifest.DuplicateReport(items)

	assert.Len(t, report, 1)
	assert.Equal(t, "A-100", report[0].ProductNo)
	assert.Equal(t, 3, report[0].Count)
	assert.Equal(t, []int{1, 3, 4}, report[0].Pages)

	// Items themselves stay per-page in report mode.
	assert.Len(t, items, 4)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestDuplicateReport_Empty(t *testing.T) {
	items := []domain.LineItem{pageItem("A-100", 1, 1)}
	assert.Empty(t, manifest.DuplicateReport(items))
}
