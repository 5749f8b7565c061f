package corpus

import "fmt"

// Error codes for corpus loading failures.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeNotFound = "E002" // Input path not found
	ErrCodeDecode   = "E003" // Malformed record batch
	ErrCodeOpen     = "E004" // Database open failed
	ErrCodeQuery    = "E005" // Database query failed
)

// LoadError is a corpus loading failure with a stable error code.
// Loading is fail-fast: the first error aborts the run before any
// generation happens.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
