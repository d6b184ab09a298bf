package tabnews

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	apierrors "github.com/tabnews/tabnews-go/internal/errors"
)

func TestObserve_Outcomes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		op   string
		res  *Result[int]
		err  error
		want string
	}{
		{"test_ok", &Result[int]{StatusCode: 200, Value: 1}, nil, outcomeOK},
		{"test_fault", &Result[int]{StatusCode: 404, Fault: apierrors.NewAPIFault(404, nil, nil)}, nil, outcomeAPIFault},
		{"test_decode", nil, fmt.Errorf("%w: bad", ErrDecode), outcomeDecodeFault},
		{"test_rejected", nil, ErrInvalidRecovery, outcomeRejected},
		{"test_transport", nil, context.DeadlineExceeded, outcomeTransportFault},
		{"test_transport2", nil, errors.New("connection refused"), outcomeTransportFault},
	}
	for _, c := range cases {
		_, _ = observe(c.op, func() (*Result[int], error) { return c.res, c.err })
		assert.Equal(t, 1.0, testutil.ToFloat64(requestsTotal.WithLabelValues(c.op, c.want)), c.op)
	}
}
