// Package errors models the failure payloads returned by the TabNews API.
// A fault means the server was reached and answered with a non-2xx status;
// transport failures never produce one.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// APIFault carries the status and raw body of a non-2xx response.
type APIFault struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Error implements the error interface.
func (f *APIFault) Error() string {
	if id := f.ErrorID(); id != "" {
		return fmt.Sprintf("tabnews: HTTP %d: %s (error_id %s)", f.StatusCode, f.Message(), id)
	}
	return fmt.Sprintf("tabnews: HTTP %d: %s", f.StatusCode, f.Message())
}

// Message returns the human readable failure reason. It prefers the
// envelope's "message", then a string "error" field, then the raw body text,
// and finally the HTTP status text.
func (f *APIFault) Message() string {
	if f.isJSON() {
		for _, key := range []string{"message", "error"} {
			if r := gjson.GetBytes(f.Body, key); r.Type == gjson.String && r.Str != "" {
				return r.Str
			}
		}
	} else if text := strings.TrimSpace(string(f.Body)); text != "" {
		return text
	}
	if text := http.StatusText(f.StatusCode); text != "" {
		return text
	}
	return "unknown API error"
}

// Name returns the envelope's error class, e.g. "NotFoundError".
func (f *APIFault) Name() string { return f.field("name") }

// Action returns the server's suggested remediation.
func (f *APIFault) Action() string { return f.field("action") }

// ErrorID returns the server-side error identifier.
func (f *APIFault) ErrorID() string { return f.field("error_id") }

// RequestID returns the server-side request identifier.
func (f *APIFault) RequestID() string { return f.field("request_id") }

// Get looks up an arbitrary field of a JSON body using gjson path syntax.
func (f *APIFault) Get(path string) gjson.Result {
	if !f.isJSON() {
		return gjson.Result{}
	}
	return gjson.GetBytes(f.Body, path)
}

func (f *APIFault) field(key string) string {
	if !f.isJSON() {
		return ""
	}
	return gjson.GetBytes(f.Body, key).String()
}

func (f *APIFault) isJSON() bool {
	return len(f.Body) > 0 && gjson.ValidBytes(f.Body)
}

// IsClientError reports a 4xx status.
func (f *APIFault) IsClientError() bool { return f.StatusCode >= 400 && f.StatusCode < 500 }

// IsServerError reports a 5xx status.
func (f *APIFault) IsServerError() bool { return f.StatusCode >= 500 && f.StatusCode < 600 }
