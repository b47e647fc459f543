package label

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
)

// LoadFontCSS reads a TrueType font file and returns the @font-face stanza
// embedding it, so CJK label text prints in the warehouse font instead of
// whatever the print host substitutes. A missing or unreadable file yields
// empty CSS and labels fall back to the layouts' system fonts.
func LoadFontCSS(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("label.LoadFontCSS: %s unavailable, using system fonts: %v", path, err)
		return ""
	}
	return fmt.Sprintf(
		" @font-face { font-family: 'LabelFont'; src: url(data:font/ttf;base64,%s) format('truetype'); } body { font-family: 'LabelFont', Helvetica, Arial, sans-serif; }",
		base64.StdEncoding.EncodeToString(data))
}
