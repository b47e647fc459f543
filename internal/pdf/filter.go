package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"shipmark/internal/domain"
	"shipmark/internal/port"
)

type pageFilter struct {
	conf *model.Configuration
}

// NewPageFilter returns the pdfcpu backed PageFilter. Validation runs
// relaxed because warehouse manifests are frequently produced by sloppy
// generators.
func NewPageFilter() port.PageFilter {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return pageFilter{conf: conf}
}

// KeepPages writes a copy of doc containing only the selected pages
// (1-based). An empty selection yields an error: a document with zero pages
// is not a valid artifact.
func (f pageFilter) KeepPages(doc []byte, pages []int) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no pages selected", domain.ErrUnreadableDocument)
	}

	selected := make([]string, len(pages))
	for i, p := range pages {
		selected[i] = strconv.Itoa(p)
	}

	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(doc), &out, selected, f.conf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	return out.Bytes(), nil
}
