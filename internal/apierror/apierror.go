package apierror

// Error codes surfaced to clients in the {message, code} envelope.
const (
	CodeInvalidID         = "INVALID ID"
	CodeInvalidInputs     = "INVALID INPUTS"
	CodeValidation        = "VALIDATION FAILED"
	CodeDuplicate         = "DUPLICATE DATA"
	CodeInvalidRole       = "INVALID USER ROLE"
	CodeInvalidPassword   = "INVALID PASSWORD"
	CodeUserNotFound      = "USER DOESNOT EXIST"
	CodeOrderLimit        = "ORDER LIMIT REACHED"
	CodeScanCompleted     = "SCAN COMPLETED"
	CodeInvalidTransition = "INVALID TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL"
)

// APIError is the single domain error type. Every module function rewraps
// failures into it so the transport layer can render the {message, code}
// envelope without inspecting error internals.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(message, code string) *APIError {
	return &APIError{Message: message, Code: code}
}

// Wrap returns err unchanged when it is already an APIError, otherwise
// rewraps it under the given code.
func Wrap(err error, code string) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{Message: err.Error(), Code: code}
}
