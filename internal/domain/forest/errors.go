package forest

// Error codes surfaced through apperrors.AppError.
const (
	CodeInvalidRange        = "invalid_range"
	CodeInvalidCatalogEntry = "invalid_catalog_entry"
	CodeNotFound            = "not_found"
	CodeSeriesError         = "series_error"
)
