package apierrors

// HTTP 400 Bad Request.
const (
	ErrInvalidQueryParams = "INVALID_QUERY_PARAMS"
)

// HTTP 404 Not Found.
const (
	ErrChartNotFound    = "CHART_NOT_FOUND"
	ErrCategoryNotFound = "CATEGORY_NOT_FOUND"
)

// HTTP 503 Service Unavailable.
const (
	ErrDatasetUnavailable = "DATASET_UNAVAILABLE"
)
