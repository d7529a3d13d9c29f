package client

import "fmt"

// APIError is a non-2xx answer. Message comes from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("barbercraft: %d %s", e.Status, e.Message)
}
