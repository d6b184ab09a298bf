package tabnews

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes recorded in requestsTotal.
const (
	outcomeOK             = "ok"
	outcomeAPIFault       = "api_fault"
	outcomeTransportFault = "transport_fault"
	outcomeDecodeFault    = "decode_fault"
	outcomeRejected       = "rejected"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tabnews_client",
			Name:      "requests_total",
			Help:      "Client operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tabnews_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of client operations, including body decoding.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// observe runs fn and records its duration and outcome.
func observe[T any](operation string, fn func() (*Result[T], error)) (*Result[T], error) {
	start := time.Now()
	res, err := fn()
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(operation, outcome(res, err)).Inc()
	return res, err
}

func outcome[T any](res *Result[T], err error) string {
	switch {
	case err == nil && res.OK():
		return outcomeOK
	case err == nil:
		return outcomeAPIFault
	case errors.Is(err, ErrDecode):
		return outcomeDecodeFault
	case errors.Is(err, ErrInvalidRecovery), errors.Is(err, ErrEmptyPathSegment):
		return outcomeRejected
	default:
		return outcomeTransportFault
	}
}
