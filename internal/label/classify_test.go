package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
	"shipmark/internal/label"
)

func fields(productNo, barcode string) domain.ExtractedFields {
	return domain.ExtractedFields{ProductNo: productNo, Barcode: barcode, Quantity: 1}
}

func TestClassify_Anymall(t *testing.T) {
	// Prints only when the manifest echoes the product number as the barcode.
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneAnymall, fields("A-100", "A-100"), nil))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneAnymall, fields("A-100", "4712345678901"), nil))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneAnymall, fields("A-100", domain.BarcodeNA), nil))
}

func TestClassify_HelloBear(t *testing.T) {
	// Prints only for barcodes carrying at least one letter.
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneHelloBear, fields("B-200", "ABC123X"), nil))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneHelloBear, fields("B-200", "4712345678901"), nil))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneHelloBear, fields("B-200", domain.BarcodeNA), nil))
	// Only Latin letters count; CJK characters alone do not trigger a print.
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneHelloBear, fields("B-200", "4712345678901棉"), nil))
}

func TestClassify_Yummy(t *testing.T) {
	foodRow := catalog.RowFromMap(map[string]string{"Energy": "120kcal"})
	cautionRow := catalog.RowFromMap(map[string]string{"Cautions": "contains nuts"})
	emptyRow := catalog.RowFromMap(map[string]string{"Name": "Mug"})

	assert.Equal(t, domain.LabelFood,
		label.Classify(domain.ZoneYummy, fields("Y-1", "4712345678901"), foodRow))
	assert.Equal(t, domain.LabelCautionOnly,
		label.Classify(domain.ZoneYummy, fields("Y-1", "4712345678901"), cautionRow))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneYummy, fields("Y-1", "4712345678901"), emptyRow))
	assert.Equal(t, domain.LabelNoPrint,
		label.Classify(domain.ZoneYummy, fields("Y-1", "4712345678901"), nil))
}

func TestClassify_Homey(t *testing.T) {
	foodRow := catalog.RowFromMap(map[string]string{"Label Type": "Food label"})
	insectRow := catalog.RowFromMap(map[string]string{"Label Type": "防蟲標籤"})

	assert.Equal(t, domain.LabelFood,
		label.Classify(domain.ZoneHomey, fields("H-1", "4712345678901"), foodRow))
	assert.Equal(t, domain.LabelInsectWarning,
		label.Classify(domain.ZoneHomey, fields("H-1", "4712345678901"), insectRow))

	// Barcode ending in a letter, Latin or CJK, means repack stock.
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneHomey, fields("H-1", "471234567890X"), nil))
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneHomey, fields("H-1", "471234567890棉"), nil))
	// No usable barcode also falls back to repack, printed from product no.
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneHomey, fields("H-1", domain.BarcodeNA), nil))
	// Product-number echo is repack too.
	assert.Equal(t, domain.LabelRepack,
		label.Classify(domain.ZoneHomey, fields("H-1", "H-1"), nil))
	// A plain numeric barcode with no catalog signal needs no printing.
	assert.Equal(t, domain.LabelNormal,
		label.Classify(domain.ZoneHomey, fields("H-1", "4712345678901"), nil))
}

func TestNeedsPrint(t *testing.T) {
	assert.True(t, domain.LabelFood.NeedsPrint())
	assert.True(t, domain.LabelInsectWarning.NeedsPrint())
	assert.True(t, domain.LabelCautionOnly.NeedsPrint())
	assert.True(t, domain.LabelRepack.NeedsPrint())
	assert.False(t, domain.LabelNoPrint.NeedsPrint())
	assert.False(t, domain.LabelNormal.NeedsPrint())
}
