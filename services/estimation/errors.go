package estimation

import "fmt"

// EstimationError signals that the estimation backend failed or returned a
// malformed payload. The request that triggered it is not retried.
type EstimationError struct {
	Code    string
	Message string
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewEstimationError(msg string) error {
	return &EstimationError{
		Code:    "estimationUnavailable",
		Message: msg,
	}
}
