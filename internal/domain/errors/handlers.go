package errors

// ErrorData is the payload written for failed requests: {"data": {"errors": [...], "code": "..."}}.
type ErrorData struct {
	Errors  []string `json:"errors"`            // User-facing messages
	Code    string   `json:"code,omitempty"`    // Business error code, e.g., "WEB_NOT_FOUND"
	Details string   `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Data *ErrorData `json:"data"`
}

// NewErrorsResponse builds the envelope for several messages, e.g. one per invalid field.
func NewErrorsResponse(code string, messages []string) ErrorResponse {
	return ErrorResponse{
		Data: &ErrorData{
			Errors: messages,
			Code:   code,
		},
	}
}

// NewErrorResponse builds the envelope for a single error message.
func NewErrorResponse(code, message, details string) ErrorResponse {
	return ErrorResponse{
		Data: &ErrorData{
			Errors:  []string{message},
			Code:    code,
			Details: details,
		},
	}
}
