package label

import (
	"fmt"
	"html"
	"strings"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
	"shipmark/internal/port"
)

// Labels are printed on 70mm x 50mm stock. The food layout uses an
// auto-height page because thermal printers cut it to length.
const (
	pageFixed = "@page { size: 70mm 50mm; margin: 0; }"
	pageAuto  = "@page { size: auto; margin: 0mm; }"
)

// repackStyle tunes the barcode-literal layout per zone.
type repackStyle struct {
	imageHeightMM int
	barcodeFontPt int
	nameFontPt    int // 0 = omit the name line
}

var repackStyles = map[domain.Zone]repackStyle{
	domain.ZoneAnymall:   {imageHeightMM: 25, barcodeFontPt: 17},
	domain.ZoneHelloBear: {imageHeightMM: 22, barcodeFontPt: 14, nameFontPt: 8},
	domain.ZoneHomey:     {imageHeightMM: 18, barcodeFontPt: 14, nameFontPt: 10},
}

// Renderer turns a classified item into a print document containing the
// quantity-repeated label body. Rendering never fails an item: a barcode
// the symbology cannot encode simply yields an empty image.
type Renderer struct {
	enc     port.BarcodeEncoder
	fontCSS string
}

// NewRenderer creates a Renderer using enc for barcode symbol images.
// fontCSS, usually from LoadFontCSS, is appended to every document's style
// block; pass "" to render with system fonts only.
func NewRenderer(enc port.BarcodeEncoder, fontCSS string) *Renderer {
	return &Renderer{enc: enc, fontCSS: fontCSS}
}

// Render produces the print document for one item, or "" when the label
// type requires no printing. qty copies of the label body are emitted into
// a single document.
func (r *Renderer) Render(t domain.LabelType, zone domain.Zone, f domain.ExtractedFields, row *catalog.Row, qty int) string {
	if qty < 1 {
		qty = 1
	}
	switch t {
	case domain.LabelFood:
		return r.Food(f.Name, f.Barcode, row, qty)
	case domain.LabelInsectWarning:
		return r.Insect(row, qty)
	case domain.LabelCautionOnly:
		text := catalog.CautionText(row)
		if text == "" {
			text = "Caution Column Empty"
		}
		return r.Caution(text, qty)
	case domain.LabelRepack:
		barcode := f.Barcode
		if !barcodeUsable(barcode) {
			barcode = f.ProductNo
		}
		return r.Repack(zone, barcode, f.Name, qty)
	}
	return ""
}

// Repack renders the barcode-literal label: symbol image, barcode text, and
// (per zone style) the item name, centered on the stock.
func (r *Renderer) Repack(zone domain.Zone, barcode, name string, qty int) string {
	style, ok := repackStyles[zone]
	if !ok {
		style = repackStyles[domain.ZoneHomey]
	}

	imgSrc := r.enc.EncodeDataURI(barcode)

	var b strings.Builder
	fmt.Fprintf(&b, `
    <div style="width: 70mm; height: 50mm; box-sizing: border-box; page-break-after: always; display: flex; flex-direction: column; justify-content: center; align-items: center; padding-top: 3mm; overflow: hidden; text-align: center;">
        <img src="%s" style="height: %dmm; width: 90%%; object-fit: contain;">
        <div style="font-family: monospace; font-weight: bold; font-size: %dpt; margin-top: 2px; letter-spacing: 1px; color: black;">%s</div>`,
		imgSrc, style.imageHeightMM, style.barcodeFontPt, html.EscapeString(barcode))
	if style.nameFontPt > 0 {
		fmt.Fprintf(&b, `
        <div style="font-size: %dpt; font-weight: bold; margin-top: 6px; width: 95%%; word-wrap: break-word; line-height: 1.2; color: black;">%s</div>`,
			style.nameFontPt, html.EscapeString(name))
	}
	b.WriteString(`
    </div>`)

	return r.wrapDocument(pageFixed+" body { margin: 0; padding: 0; background-color: white; }", b.String(), qty)
}

// Insect renders the insect-warning label. Every block is emitted even when
// empty so the fixed layout keeps its placeholder heights.
func (r *Renderer) Insect(row *catalog.Row, qty int) string {
	get := func(keys ...string) string {
		if row == nil {
			return ""
		}
		return html.EscapeString(row.GetAny(keys...))
	}

	body := fmt.Sprintf(`
    <div class="label-box" style="width: 70mm; height: 50mm; box-sizing: border-box; padding: 3mm 4mm; overflow: hidden; background-color: white; color: black; font-size: 4pt; line-height: 1.1; page-break-after: always;">
        <div style="margin-bottom: 6pt; word-wrap: break-word; font-weight: bold; min-height: 6pt;">
            <div>%s</div>
            <div>%s</div>
        </div>
        <div style="margin-bottom: 6pt; word-wrap: break-word; font-weight: bold; min-height: 6pt;">%s</div>
        <div style="margin-bottom: 6pt; word-wrap: break-word; font-weight: bold; min-height: 6pt;">%s</div>
        <div style="margin-bottom: 6pt; word-wrap: break-word; font-weight: bold; min-height: 6pt;">%s</div>
        <div style="margin-bottom: 6pt; word-wrap: break-word; font-weight: bold; min-height: 6pt;">%s</div>
        <div style="word-wrap: break-word; font-weight: bold; min-height: 6pt;">%s</div>
    </div>`,
		get("Barcode"), get("Description"), get("FEATURES"), get("Cautions"),
		get("Net Content", "Net_Content"), get("Ingredients"), get("警告字眼"))

	return r.wrapDocument(pageFixed+" body { margin: 0; padding: 0; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: white; }", body, qty)
}

// Caution renders the large centered free-text warning label.
func (r *Renderer) Caution(text string, qty int) string {
	formatted := strings.ReplaceAll(html.EscapeString(text), "\n", "<br/>")
	body := fmt.Sprintf(`
    <div style="width: 70mm; height: 50mm; box-sizing: border-box; padding: 2mm; page-break-after: always; display: flex; align-items: center; justify-content: center; text-align: center;">
        <div style="font-size: 15pt; font-weight: 900; line-height: 1.2; word-wrap: break-word; color: black;">%s</div>
    </div>`, formatted)

	return r.wrapDocument(pageAuto+" body { margin: 0; padding: 0; font-family: Helvetica, Arial, sans-serif; }", body, qty)
}

// nutritionKeys lists the panel rows in print order: display caption plus
// the raw catalog columns probed for the value.
var nutritionKeys = []struct {
	caption string
	indent  bool
	columns []string
}{
	{caption: "Serving Size:", columns: []string{"Serving_Size"}},
	{caption: "Energy:", columns: []string{"Energy"}},
	{caption: "Protein:", columns: []string{"Protein"}},
	{caption: "Total fat:", columns: []string{"Total_Fat"}},
	{caption: "- Saturated fat:", indent: true, columns: []string{"Sat_Fat"}},
	{caption: "- Trans fat:", indent: true, columns: []string{"Trans_Fat"}},
	{caption: "Carbohydrates:", columns: []string{"Carb"}},
	{caption: "- Sugars:", indent: true, columns: []string{"Sugar"}},
	{caption: "Sodium:", columns: []string{"Sodium"}},
	{caption: "Net Content:", columns: []string{"Net_Content", "Net Content"}},
	{caption: "Country Of Origin:", columns: []string{"Country_Of_Origin"}},
}

// Food renders the structured nutrition-panel label. Catalog name takes
// priority over the extracted name; missing nutrition values print as "0".
func (r *Renderer) Food(itemName, barcodeText string, row *catalog.Row, qty int) string {
	desc := itemName
	barcode := barcodeText
	var ingredients, manufacturer string
	if row != nil {
		if row.Name != "" {
			desc = row.Name
		}
		if !barcodeUsable(barcode) {
			barcode = row.Get("Barcode")
		}
		ingredients = row.Get("Ingredients")
		manufacturer = strings.TrimSpace(row.Get("Madeby_Prefix") + " " + row.Get("Madeby"))
		if manufacturer != "" && !strings.Contains(manufacturer, "Manufacturer") {
			manufacturer = "Manufacturer: " + manufacturer
		}
	} else if !barcodeUsable(barcode) {
		barcode = ""
	}

	var rows strings.Builder
	for _, nk := range nutritionKeys {
		val := "0"
		if row != nil {
			if v := row.GetAny(nk.columns...); v != "" {
				val = v
			}
		}
		pad := ""
		if nk.indent {
			pad = " padding-left: 3px;"
		}
		fmt.Fprintf(&rows, `
            <div style="display: flex; justify-content: space-between;%s"><span>%s</span><span>%s</span></div>`,
			pad, nk.caption, html.EscapeString(val))
	}

	body := fmt.Sprintf(`
    <div class="label-container" style="width: 70mm; height: 50mm; position: relative; box-sizing: border-box; border: 1px solid #ddd; page-break-after: always; overflow: hidden; font-weight: bold;">
        <div style="position: absolute; left: 2mm; top: 2mm; font-size: 5pt; font-weight: bold;">%s</div>
        <div style="position: absolute; left: 2mm; top: 4.5mm; width: 59mm; font-size: 5pt; line-height: 1.2; font-weight: bold;">%s</div>
        <div style="position: absolute; left: 0; top: 9mm; width: 70mm; border-top: 1.42pt solid black;"></div>
        <div style="position: absolute; left: 2mm; top: 10mm; width: 23mm; font-size: 3.5pt; line-height: 4.5pt; font-weight: bold;">
            <div style="font-weight: bold; margin-bottom: 1px;">Nutrition Information</div>%s
        </div>
        <div style="position: absolute; left: 26mm; top: 9mm; height: 29mm; border-left: 1.42pt solid black;"></div>
        <div style="position: absolute; left: 27mm; top: 10mm; width: 41mm; height: 28mm; font-size: 3.5pt; line-height: 1.1; overflow: hidden; text-align: justify; font-weight: bold;">Ingredients: %s</div>
        <div style="position: absolute; left: 0; top: 38mm; width: 70mm; border-top: 1.42pt solid black;"></div>
        <div style="position: absolute; left: 2mm; top: 40mm; width: 35mm; font-size: 4.76pt; line-height: 1.2; font-weight: bold;">%s</div>
        <div style="position: absolute; left: 47mm; top: 40mm; width: 27mm; font-size: 4.2pt; line-height: 1.2; font-weight: bold; white-space: nowrap;">Best before(Date Format):<br>Show on package(見包裝)<br>此日期前最佳(Format CHI)</div>
    </div>`,
		html.EscapeString(barcode), html.EscapeString(desc), rows.String(),
		html.EscapeString(ingredients), html.EscapeString(manufacturer))

	return r.wrapDocument(pageAuto+" body { margin: 0; padding: 0; font-family: Helvetica, Arial, sans-serif; }", body, qty)
}

// wrapDocument assembles the final print document: the single label body
// repeated qty times inside one HTML page set. The font stanza comes last so
// its body rule wins over the layout's font-family.
func (r *Renderer) wrapDocument(css, body string, qty int) string {
	var b strings.Builder
	b.WriteString("<html><head><style>")
	b.WriteString(css)
	b.WriteString(r.fontCSS)
	b.WriteString("</style></head><body>")
	for i := 0; i < qty; i++ {
		b.WriteString(body)
	}
	b.WriteString("</body></html>")
	return b.String()
}

// CountBodies reports how many label bodies a rendered document contains.
// Used by operators' print preview to sanity-check quantity.
func CountBodies(doc string) int {
	return strings.Count(doc, "page-break-after: always")
}
