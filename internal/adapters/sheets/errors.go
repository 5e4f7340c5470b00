package sheets

import "errors"

// Sentinel kinds for sheet fetch errors.
var (
	ErrNoSpreadsheet = errors.New("spreadsheet id not configured")
	ErrNoCredentials = errors.New("service-account credentials unavailable")
	ErrFetch         = errors.New("sheet fetch failed")
	ErrNoData        = errors.New("sheet range is empty")
)
