package apierrors

// APIError is an error carrying an HTTP status and a stable machine code.
type APIError struct {
	Status int    `json:"-"`
	Code   string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Code
}

func NewAPIError(status int, code string) *APIError {
	return &APIError{Status: status, Code: code}
}
