package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// HTTPError is an error that knows its HTTP status and public message.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}
