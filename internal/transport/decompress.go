// Package transport holds http.RoundTripper middleware shared by the client.
package transport

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// AcceptEncoding is the value advertised on every request.
const AcceptEncoding = "gzip,deflate,compress"

// Decompressor decodes gzip and deflate response bodies. Setting
// Accept-Encoding explicitly disables net/http's own transparent gzip
// handling, so responses arrive still encoded.
//
// Unknown encodings are passed through untouched.
type Decompressor struct {
	Base http.RoundTripper
}

// NewDecompressor wraps base, falling back to http.DefaultTransport.
func NewDecompressor(base http.RoundTripper) *Decompressor {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Decompressor{Base: base}
}

func (d *Decompressor) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := d.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if req.Method == http.MethodHead || resp.StatusCode == http.StatusNoContent {
		return resp, nil
	}

	var decoded io.ReadCloser
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip", "x-gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("gzip response: %w", err)
		}
		decoded = gr
	case "deflate":
		zr, err := zlib.NewReader(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("deflate response: %w", err)
		}
		decoded = zr
	default:
		return resp, nil
	}

	resp.Body = &decodedBody{ReadCloser: decoded, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// decodedBody closes both the decoder and the underlying connection body.
type decodedBody struct {
	io.ReadCloser
	raw io.ReadCloser
}

func (b *decodedBody) Close() error {
	err := b.ReadCloser.Close()
	if rawErr := b.raw.Close(); err == nil {
		err = rawErr
	}
	return err
}
