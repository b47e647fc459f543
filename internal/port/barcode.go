package port

// BarcodeEncoder renders a barcode string into an inline image reference
// (data URI). Implementations must degrade: text the symbology cannot
// encode yields an empty string, never an error that would fail the item.
type BarcodeEncoder interface {
	EncodeDataURI(text string) string
}
