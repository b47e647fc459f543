package label_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmark/internal/label"
	"shipmark/mocks"
)

func TestLoadFontCSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.ttf")
	payload := []byte("fake-font-bytes")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	css := label.LoadFontCSS(path)
	assert.Contains(t, css, "@font-face")
	assert.Contains(t, css, "'LabelFont'")
	assert.Contains(t, css, base64.StdEncoding.EncodeToString(payload))
}

func TestLoadFontCSS_MissingFile(t *testing.T) {
	assert.Empty(t, label.LoadFontCSS(filepath.Join(t.TempDir(), "absent.ttf")))
}

func TestLoadFontCSS_EmptyPath(t *testing.T) {
	assert.Empty(t, label.LoadFontCSS(""))
}

func TestRenderer_FontCSSInjected(t *testing.T) {
	fontCSS := " @font-face { font-family: 'LabelFont'; }"
	r := label.NewRenderer(new(mocks.MockBarcodeEncoder), fontCSS)

	doc := r.Caution("注意", 1)
	assert.Contains(t, doc, fontCSS)
}
