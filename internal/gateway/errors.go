// Package gateway is the client for the persistence gateway service.
package gateway

import "fmt"

// Error reports a failed gateway call. StatusCode is zero when the request
// never got a response.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("gateway %s failed: %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("gateway %s failed: status %d", e.Op, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("gateway %s failed", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
