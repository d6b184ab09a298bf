package tabnews

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// debugTransport logs every request/response exchanged with the API.
//
// It sits above the decompressor, so dumped bodies are already decoded. Dumps
// include credentials sent to /sessions and the returned token.
//
// Enable with WithDebugLogging(true) and a logger at debug level:
//
//	c, _ := tabnews.New(
//		tabnews.WithDebugLogging(true),
//		tabnews.WithLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel)),
//	)
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get(requestIDHeader)
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// restyLogger routes resty's internal warnings to zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
