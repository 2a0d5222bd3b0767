package errors

// ErrorResponse is the envelope every failed billcraft request returns.
// The error handler middleware fills it from the error chain.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the caller-facing message (the first hint on the
// chain) plus any reportable details attached while building the error.
// InternalError is only populated outside production deployments.
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
