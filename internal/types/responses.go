package types

import (
	"net/http"

	apierrors "github.com/tabnews/tabnews-go/internal/errors"
)

// ------------------------------
// Response Types
// ------------------------------

// Result is the outcome of a request the server answered. Exactly one of
// Value (2xx) or Fault (any other status) is meaningful.
type Result[T any] struct {
	StatusCode int
	Header     http.Header
	Value      T
	Fault      *apierrors.APIFault
}

// OK reports whether the server answered with a 2xx status.
func (r *Result[T]) OK() bool { return r != nil && r.Fault == nil }

// Err returns the API fault as an error, or nil on success.
func (r *Result[T]) Err() error {
	if r == nil || r.Fault == nil {
		return nil
	}
	return r.Fault
}
