// Package logger provides a configured zerolog logger.
package logger

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// New returns a JSON zerolog.Logger writing to out, tagged with service.
// Call sites should use .Stack() on error events to include stacks.
func New(out io.Writer, service string, level zerolog.Level) zerolog.Logger {
	EnableStacks()
	return zerolog.New(out).Level(level).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// EnableStacks installs the stack marshaler used by .Stack() events. Errors
// without a stack get one captured at marshal time.
func EnableStacks() {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}
