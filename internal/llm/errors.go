package llm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON = errors.New("model output is not valid json")
	ErrNoChoices   = errors.New("no choices in completion response")
)

// HTTPError is a non-2xx answer from the inference endpoint.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.Status, e.Body)
}
