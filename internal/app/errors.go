package app

import "fmt"

// ValidationError reports an option rejected before any directory access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("`%s` %s", e.Field, e.Message)
}

func validateMaxLines(n int) error {
	if n <= 0 {
		return &ValidationError{Field: "max_lines", Message: "must be greater than 0"}
	}
	return nil
}
