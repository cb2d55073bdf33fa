package ranking

import "fmt"

// ProviderError represents a failed call to the search or distance matrix
// provider. These fail the whole pipeline run, unlike per-station
// enrichment failures which are recovered locally.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error
func NewProviderError(message string, err error) *ProviderError {
	return &ProviderError{
		Message: message,
		Err:     err,
	}
}
