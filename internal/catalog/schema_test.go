package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmark/internal/catalog"
)

func TestSchema_HeaderAliases(t *testing.T) {
	csv := "ProductCode,Barcode,Description\nA-100,4712345678901,Cotton Blanket\n"
	snap := loadSnapshot(t, csv)

	require.Len(t, snap.Rows, 1)
	row := snap.Rows[0]
	assert.Equal(t, "A-100", row.ProductNo)
	assert.Equal(t, "Cotton Blanket", row.Name)
}

func TestSchema_HeaderWhitespaceTrimmed(t *testing.T) {
	csv := " Product_No , Name \nA-100,Mug\n"
	snap := loadSnapshot(t, csv)

	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "A-100", snap.Rows[0].ProductNo)
	assert.Equal(t, "Mug", snap.Rows[0].Get("Name"))
}

func TestRow_Get_BlanksSpreadsheetArtifacts(t *testing.T) {
	row := catalog.RowFromMap(map[string]string{
		"Cautions": "nan",
		"Energy":   " None ",
		"Name":     " Mug ",
	})
	assert.Equal(t, "", row.Get("Cautions"))
	assert.Equal(t, "", row.Get("Energy"))
	assert.Equal(t, "Mug", row.Get("Name"))
	assert.Equal(t, "", row.Get("Missing"))
}

func TestRow_GetAny(t *testing.T) {
	row := catalog.RowFromMap(map[string]string{
		"Net_Content": "",
		"Net Content": "250g",
	})
	assert.Equal(t, "250g", row.GetAny("Net_Content", "Net Content"))
	assert.Equal(t, "", row.GetAny("Missing", "AlsoMissing"))
}

func TestRowFromMap_NormalizedColumns(t *testing.T) {
	row := catalog.RowFromMap(map[string]string{
		"Product No": "A-100",
		"Barcode":    "4712345678901",
		"Label Type": "insect",
	})
	assert.Equal(t, "A-100", row.ProductNo)
	assert.Equal(t, "4712345678901", row.Barcode)
	assert.Equal(t, "insect", row.LabelType)
}

func TestSchema_ShortRecordsLoad(t *testing.T) {
	csv := "Product_No,Name,Cautions\nA-100,Mug\nB-200\n"
	snap := loadSnapshot(t, csv)

	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "Mug", snap.Rows[0].Name)
	assert.Equal(t, "B-200", snap.Rows[1].ProductNo)
	assert.Equal(t, "", snap.Rows[1].Get("Cautions"))
}
