package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIFault_Envelope(t *testing.T) {
	t.Parallel()
	body := []byte(`{"name":"NotFoundError","message":"O conteúdo informado não foi encontrado no sistema.","action":"Verifique se o \"slug\" está digitado corretamente.","status_code":404,"error_id":"e1","request_id":"r1"}`)
	f := NewAPIFault(http.StatusNotFound, nil, body)

	assert.Equal(t, "NotFoundError", f.Name())
	assert.Equal(t, "O conteúdo informado não foi encontrado no sistema.", f.Message())
	assert.Equal(t, `Verifique se o "slug" está digitado corretamente.`, f.Action())
	assert.Equal(t, "e1", f.ErrorID())
	assert.Equal(t, "r1", f.RequestID())
	assert.Equal(t, int64(404), f.Get("status_code").Int())
	assert.True(t, f.IsClientError())
	assert.False(t, f.IsServerError())
	assert.Contains(t, f.Error(), "error_id e1")
}

func TestAPIFault_MessageFallbacks(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", 404, `{"error":"not found"}`, "not found"},
		{"plain text", 502, "bad gateway upstream", "bad gateway upstream"},
		{"empty body", 503, "", "Service Unavailable"},
		{"json without message", 400, `{"foo":1}`, "Bad Request"},
		{"unknown status", 599, "", "unknown API error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewAPIFault(c.status, nil, []byte(c.body))
			assert.Equal(t, c.want, f.Message())
		})
	}
}

func TestAPIFault_NonJSONFieldsEmpty(t *testing.T) {
	t.Parallel()
	f := NewAPIFault(500, nil, []byte("<html>oops</html>"))
	assert.Empty(t, f.Name())
	assert.Empty(t, f.ErrorID())
	assert.False(t, f.Get("message").Exists())
	assert.True(t, f.IsServerError())
	assert.NotNil(t, f.Header)
}

func TestAsAPIFault(t *testing.T) {
	t.Parallel()
	f := NewAPIFault(401, nil, []byte(`{"message":"nope"}`))
	wrapped := fmt.Errorf("login: %w", f)

	got, ok := AsAPIFault(wrapped)
	require.True(t, ok)
	assert.Same(t, f, got)

	_, ok = AsAPIFault(fmt.Errorf("other"))
	assert.False(t, ok)
}
