// Package barcode renders label barcode symbols as inline images.
package barcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"log"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"shipmark/internal/port"
)

// Symbol raster dimensions in pixels; wide enough for 15-character codes at
// label print resolution.
const (
	symbolWidth  = 400
	symbolHeight = 90
)

type code128Encoder struct{}

// NewCode128Encoder returns a BarcodeEncoder producing Code 128 PNG data
// URIs.
func NewCode128Encoder() port.BarcodeEncoder {
	return code128Encoder{}
}

// EncodeDataURI renders text as a Code 128 symbol. Text outside the Code
// 128 character set degrades to an empty string so the label still prints
// with its human-readable line.
func (code128Encoder) EncodeDataURI(text string) string {
	if text == "" {
		return ""
	}
	sym, err := code128.Encode(text)
	if err != nil {
		log.Printf("barcode.EncodeDataURI: cannot encode %q: %v", text, err)
		return ""
	}
	scaled, err := barcode.Scale(sym, symbolWidth, symbolHeight)
	if err != nil {
		log.Printf("barcode.EncodeDataURI: cannot scale symbol for %q: %v", text, err)
		return ""
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
