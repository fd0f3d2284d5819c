package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PET_NOT_FOUND"
	Message string `json:"message,omitempty"` // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope used by the error middleware when it has
// to render an error outside a handler's normal flow.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
