package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnknownZone         = errors.New("unknown zone")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnreadableDocument  = errors.New("document could not be read")
	ErrCatalogUnavailable  = errors.New("catalog is not loaded")
	ErrNoLabelData         = errors.New("row has no usable label data")
	ErrItemNotFound        = errors.New("inspection item not found")
	ErrNoTask              = errors.New("no inspection task for zone")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
