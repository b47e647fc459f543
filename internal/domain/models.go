package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel values surfaced to operators in place of missing fields. They are
// deliberately distinct from the empty string so callers can tell "nothing
// found" apart from "field was blank in the source".
const (
	BarcodeNA       = "(N/A)"
	DateNotDetected = "未偵測到"
	ProductUnknown  = "Unknown"
)

// ExtractedFields holds the raw values recovered from one manifest page.
// Quantity is always >= 1; absent markers degrade to the defaults rather
// than failing the page.
type ExtractedFields struct {
	ProductNo string
	Name      string
	Quantity  int
	Barcode   string
	Date      string
}

// LineItem is the externally visible unit produced per manifest page.
type LineItem struct {
	ID            string    `json:"id"`
	ProductNo     string    `json:"product_no"`
	Name          string    `json:"name"`
	Barcode       string    `json:"barcode"`
	Quantity      int       `json:"quantity"`
	Date          string    `json:"date"`
	Zone          Zone      `json:"zone"`
	LabelType     LabelType `json:"label_type"`
	PrintDocument string    `json:"print_document"`
	IsDuplicate   bool      `json:"is_duplicate"`
	SourcePages   []int     `json:"source_pages"`
}

// DuplicateEntry reports a product number that appeared on more than one
// page of a document. Derived during aggregation, never stored.
type DuplicateEntry struct {
	ProductNo string `json:"product_no"`
	Count     int    `json:"count"`
	Pages     []int  `json:"pages"`
}

// UploadSummary is the per-document roll-up returned with every upload.
// TotalPages counts pages that yielded an item; blank pages do not count.
type UploadSummary struct {
	TotalPages    int  `json:"total_pages"`
	HasDuplicates bool `json:"has_duplicates"`
}

// OutputDocument references the filtered manifest copy that contains only
// the pages which yielded an item. The object is ephemeral; it is deleted
// after a fixed delay and nothing may depend on it surviving that window.
type OutputDocument struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ManifestResult is the complete outcome of processing one manifest upload.
type ManifestResult struct {
	Items      []LineItem       `json:"items"`
	Duplicates []DuplicateEntry `json:"duplicates"`
	Summary    UploadSummary    `json:"summary"`
	Output     *OutputDocument  `json:"output_document,omitempty"`
}

// InspectionTask is the current checklist for one zone. Uploading a new
// manifest for the zone replaces the previous task wholesale.
type InspectionTask struct {
	Zone      Zone      `db:"zone" json:"zone"`
	Filename  string    `db:"filename" json:"filename"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InspectionItem is one merged checklist row. Items sharing a product number
// within one document are merged: quantities sum and IsDuplicate is set.
type InspectionItem struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Zone        Zone             `db:"zone" json:"zone"`
	Seq         int              `db:"seq" json:"seq"`
	ProductNo   string           `db:"product_no" json:"product_no"`
	Name        string           `db:"name" json:"name"`
	TargetQty   int              `db:"target_qty" json:"target_qty"`
	ScannedQty  int              `db:"scanned_qty" json:"scanned_qty"`
	Barcode     string           `db:"barcode" json:"barcode"`
	Status      InspectionStatus `db:"status" json:"status"`
	IsDuplicate bool             `db:"is_duplicate" json:"is_duplicate"`
}

// CatalogInfo describes the currently loaded master catalog.
type CatalogInfo struct {
	TotalRecords int    `json:"total_records"`
	CurrentFile  string `json:"current_file"`
}

// SearchHit is one catalog row returned by the label search endpoint,
// annotated with its richness status so the client knows which layout the
// row can drive.
type SearchHit struct {
	ProductNo string            `json:"product_no"`
	Barcode   string            `json:"barcode"`
	Name      string            `json:"name"`
	Status    RowStatus         `json:"status"`
	Matched   map[string]string `json:"matched_data"`
}
