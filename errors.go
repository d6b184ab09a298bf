package tabnews

import (
	"errors"

	apierrors "github.com/tabnews/tabnews-go/internal/errors"
	"github.com/tabnews/tabnews-go/internal/types"
)

// ErrInvalidOption is returned by New when an option value is rejected.
var ErrInvalidOption = errors.New("invalid option")

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrDecode           = types.ErrDecode
	ErrInvalidRecovery  = types.ErrInvalidRecovery
	ErrEmptyPathSegment = types.ErrEmptyPathSegment
)

// AsAPIFault extracts an *APIFault from err, e.g. one returned by Result.Err.
func AsAPIFault(err error) (*APIFault, bool) { return apierrors.AsAPIFault(err) }
