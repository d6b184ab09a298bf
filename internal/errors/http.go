package errors

import (
	"errors"
	"net/http"
)

// NewAPIFault builds a fault from a completed response. The body is kept
// verbatim; callers must not mutate it afterwards.
func NewAPIFault(statusCode int, header http.Header, body []byte) *APIFault {
	if header == nil {
		header = http.Header{}
	}
	return &APIFault{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
	}
}

// AsAPIFault extracts an *APIFault from err's chain.
func AsAPIFault(err error) (*APIFault, bool) {
	var f *APIFault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
