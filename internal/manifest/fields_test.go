package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipmark/internal/domain"
	"shipmark/internal/manifest"
)

func TestTokenize(t *testing.T) {
	text := "A-100\n\n  Cotton Blanket  \n[Image: logo.png]\n3 .0000\n"
	lines := manifest.Tokenize(text)
	assert.Equal(t, []string{"A-100", "Cotton Blanket", "3 .0000"}, lines)
}

func TestTokenize_EmptyPage(t *testing.T) {
	assert.Empty(t, manifest.Tokenize("\n  \n[Image: scan.jpg]\n"))
}

func TestExtract_EmptyLines_Defaults(t *testing.T) {
	f := manifest.Extract(nil, "", manifest.ZoneProfile(domain.ZoneAnymall))
	assert.Equal(t, domain.ProductUnknown, f.ProductNo)
	assert.Equal(t, 1, f.Quantity)
	assert.Equal(t, domain.BarcodeNA, f.Barcode)
}

func TestExtract_InlineQuantity(t *testing.T) {
	lines := []string{"A-100", "Cotton Blanket", "3 .0000", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "A-100", f.ProductNo)
	assert.Equal(t, 3, f.Quantity)
	assert.Equal(t, "Cotton Blanket", f.Name)
	assert.Equal(t, "4712345678901", f.Barcode)
}

func TestExtract_QuantityOnPreviousLine(t *testing.T) {
	lines := []string{"A-100", "Cotton Blanket", "5", ".0000", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, 5, f.Quantity)
	assert.Equal(t, "Cotton Blanket", f.Name)
}

func TestExtract_TrailingQuantitySplitOffName(t *testing.T) {
	// The count is glued to the end of the name line; it splits off and the
	// marker boundary moves back so the name stays clean.
	lines := []string{"A-100", "Cotton Blanket 7", ".0000", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, 7, f.Quantity)
	assert.Equal(t, "Cotton Blanket", f.Name)
}

func TestExtract_NoMarker_QuantityDefaultsToOne(t *testing.T) {
	lines := []string{"A-100", "Cotton Blanket"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, 1, f.Quantity)
	assert.Equal(t, "Cotton Blanket", f.Name)
}

func TestExtract_NoMarker_NameStopsAtBarcodeShapedLine(t *testing.T) {
	lines := []string{"A-100", "Cotton", "Blanket", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "Cotton Blanket", f.Name)
}

func TestExtract_MultiLineName(t *testing.T) {
	lines := []string{"A-100", "Cotton", "Blanket", "Queen Size", "2 .0000", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "Cotton Blanket Queen Size", f.Name)
	assert.Equal(t, 2, f.Quantity)
}

func TestExtractBarcode_ScanMode_StarPriority(t *testing.T) {
	// A starred line wins even when a digit run appears first.
	lines := []string{"A-100", "Item", "1 .0000", "4712345678901", "*A-100X*"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "4712345678901", f.Barcode)

	lines = []string{"A-100", "Item", "1 .0000", "*A-100X*", "4712345678901"}
	f = manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "A-100X", f.Barcode)
}

func TestExtractBarcode_ScanMode_ProductNoEcho(t *testing.T) {
	lines := []string{"AB-200", "Item", "1 .0000", "AB200"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, "AB200", f.Barcode)
}

func TestExtractBarcode_ScanMode_SkipsNAAndPageFooter(t *testing.T) {
	lines := []string{"A-100", "Item", "1 .0000", "N/A", "Page 1 of 2"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHomey))
	assert.Equal(t, domain.BarcodeNA, f.Barcode)
}

func TestExtractBarcode_JoinMode(t *testing.T) {
	// hellobear manifests wrap the barcode across lines below the marker.
	lines := []string{"B-300", "Item", "2 .0000", "471234", "5678 901*"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHelloBear))
	assert.Equal(t, "4712345678901", f.Barcode)
}

func TestExtractBarcode_JoinMode_PrevLineQuantityShiftsBoundary(t *testing.T) {
	// A digits-only line before the marker becomes the boundary itself, so
	// the join region starts at the marker line.
	lines := []string{"B-300", "Item", "2", ".0000", "471234", "5678 901*"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHelloBear))
	assert.Equal(t, 2, f.Quantity)
	assert.Equal(t, "Item", f.Name)
	assert.Equal(t, ".00004712345678901", f.Barcode)
}

func TestExtractBarcode_JoinMode_NoMarkerYieldsSentinel(t *testing.T) {
	lines := []string{"B-300", "Item", "4712345678901"}
	f := manifest.Extract(lines, "", manifest.ZoneProfile(domain.ZoneHelloBear))
	assert.Equal(t, domain.BarcodeNA, f.Barcode)
}

func TestExtract_InspectionProfile_StripsDateSuffix(t *testing.T) {
	lines := []string{"C-400", "Item", "1 .0000", "ABC-123-20250817XX"}
	f := manifest.Extract(lines, "", manifest.InspectionProfile())
	assert.Equal(t, "ABC-123", f.Barcode)
}

func TestExtract_InspectionProfile_FallsBackToProductNo(t *testing.T) {
	lines := []string{"C-400", "Item"}
	f := manifest.Extract(lines, "", manifest.InspectionProfile())
	assert.Equal(t, "C-400", f.Barcode)
}

func TestExtract_YummyDateFromPageText(t *testing.T) {
	lines := []string{"Y-500", "Item", "1 .0000", "4712345678901"}
	f := manifest.Extract(lines, "Shipment date 20250817 confirmed", manifest.ZoneProfile(domain.ZoneYummy))
	assert.Equal(t, "2025-08-17", f.Date)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"compact", "ref 20250817 end", "2025-08-17"},
		{"day first slashes", "due 17/08/2025", "2025-08-17"},
		{"year first dots", "made 2025.08.17", "2025-08-17"},
		{"year first dashes", "made 2025-08-17", "2025-08-17"},
		{"compact beats standard", "a 20240101 b 2025-08-17", "2024-01-01"},
		{"invalid month rejected", "x 20251317 y", domain.DateNotDetected},
		{"absent", "no dates here", domain.DateNotDetected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manifest.ExtractDate(tt.text))
		})
	}
}
