package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
)

func loadSnapshot(t *testing.T, csv string) *catalog.Snapshot {
	t.Helper()
	dir := t.TempDir()
	writeCatalog(t, dir, "data.csv", csv)
	snap, err := catalog.NewStore(dir).Get()
	require.NoError(t, err)
	return snap
}

func TestMatch_ProductNoExact(t *testing.T) {
	snap := loadSnapshot(t, sampleCSV)
	row := catalog.Match(snap, "A-100", "")
	require.NotNil(t, row)
	assert.Equal(t, "Cotton Blanket", row.Name)
}

func TestMatch_BarcodeFallback(t *testing.T) {
	snap := loadSnapshot(t, sampleCSV)
	row := catalog.Match(snap, "UNKNOWN-1", "4712345678902")
	require.NotNil(t, row)
	assert.Equal(t, "B-200", row.ProductNo)
}

func TestMatch_SentinelBarcodeNeverMatches(t *testing.T) {
	snap := loadSnapshot(t, "Product_No,Barcode\nX-1,"+domain.BarcodeNA+"\n")
	assert.Nil(t, catalog.Match(snap, "UNKNOWN-1", domain.BarcodeNA))
}

func TestMatch_NilSnapshot(t *testing.T) {
	assert.Nil(t, catalog.Match(nil, "A-100", ""))
}

func TestMatch_RicherRowWins(t *testing.T) {
	csv := "Product_No,Name,Energy,Cautions\n" +
		"A-100,Plain Row,,\n" +
		"A-100,Food Row,120kcal,\n"
	snap := loadSnapshot(t, csv)

	row := catalog.Match(snap, "A-100", "")
	require.NotNil(t, row)
	assert.Equal(t, "Food Row", row.Name)
}

func TestSearch_SubstringAndDedupe(t *testing.T) {
	csv := "Product_No,Barcode,Name,Energy\n" +
		"A-100,4712345678901,Cotton Blanket,\n" +
		"A-100,4712345678901,Cotton Blanket,120kcal\n" +
		"B-200,4712345678902,Trail Mix,\n"
	snap := loadSnapshot(t, csv)

	rows := catalog.Search(snap, "cotton")
	require.Len(t, rows, 1)
	// The richer duplicate survives the dedupe.
	assert.Equal(t, "120kcal", rows[0].Get("Energy"))

	rows = catalog.Search(snap, "4712345678902")
	require.Len(t, rows, 1)
	assert.Equal(t, "B-200", rows[0].ProductNo)

	assert.Empty(t, catalog.Search(snap, "zzz"))
	assert.Empty(t, catalog.Search(snap, "  "))
}
