package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/tabnews/tabnews-go/internal/types"
)

// UserAnalytics retrieves daily account registrations.
func UserAnalytics(ctx context.Context, rc *resty.Client) (*types.Result[[]types.StatusPoint], error) {
	return analytics(ctx, rc, "/analytics/users-created", types.MetricUsersCreated)
}

// PostAnalytics retrieves daily published root contents.
func PostAnalytics(ctx context.Context, rc *resty.Client) (*types.Result[[]types.StatusPoint], error) {
	return analytics(ctx, rc, "/analytics/root-content-published", types.MetricRootContentPublished)
}

// CommentsAnalytics retrieves daily published replies.
func CommentsAnalytics(ctx context.Context, rc *resty.Client) (*types.Result[[]types.StatusPoint], error) {
	return analytics(ctx, rc, "/analytics/child-content-published", types.MetricChildContentPublished)
}

func analytics(ctx context.Context, rc *resty.Client, path, metric string) (*types.Result[[]types.StatusPoint], error) {
	return execute(ctx, rc.R(), http.MethodGet, path, statusDecoder(metric))
}

// statusDecoder reads [{"date": "dd/mm", "<metric>": n}, ...]. The counter's
// key differs per endpoint, so points are read field by field.
func statusDecoder(metric string) func([]byte) ([]types.StatusPoint, error) {
	keys := append([]string{metric}, types.MetricAliases(metric)...)
	return func(body []byte) ([]types.StatusPoint, error) {
		if !gjson.ValidBytes(body) {
			return nil, fmt.Errorf("%w: invalid JSON", types.ErrDecode)
		}
		doc := gjson.ParseBytes(body)
		if !doc.IsArray() {
			return nil, fmt.Errorf("%w: expected array, got %s", types.ErrDecode, doc.Type)
		}

		elems := doc.Array()
		points := make([]types.StatusPoint, 0, len(elems))
		for i, el := range elems {
			date := el.Get("date")
			if date.Type != gjson.String {
				return nil, fmt.Errorf("%w: point %d has no date", types.ErrDecode, i)
			}
			p := types.StatusPoint{Date: date.Str, Metric: metric}
			for _, k := range keys {
				if v := el.Get(k); v.Type == gjson.Number {
					p.Value = v.Int()
					p.Metric = k
					break
				}
			}
			points = append(points, p)
		}
		return points, nil
	}
}
