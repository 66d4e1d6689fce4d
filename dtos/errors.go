package dtos

// ErrorResponse is the uniform error envelope emitted by every failing
// request: {"error":{"statusCode":...,"message":...,"details":...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// NewError builds an envelope with the given status and message.
func NewError(statusCode int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{StatusCode: statusCode, Message: message}}
}

// ValidationError builds a 400 envelope carrying per-field messages.
func ValidationError(details map[string]string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{StatusCode: 400, Message: "Validation Error", Details: details}}
}

// NotFound builds a 404 envelope for the named resource.
func NotFound(resource string) ErrorResponse {
	return NewError(404, resource+" not found")
}

// AuthError builds a 401 envelope.
func AuthError(message string) ErrorResponse {
	return NewError(401, message)
}

// ServerError builds a 500 envelope. The underlying error is only exposed
// when includeDetail is set, so production responses stay generic.
func ServerError(err error, includeDetail bool) ErrorResponse {
	resp := NewError(500, "Internal Server Error")
	if includeDetail && err != nil {
		resp.Error.Details = err.Error()
	}
	return resp
}
