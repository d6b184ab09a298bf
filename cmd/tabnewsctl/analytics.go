package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	tabnews "github.com/tabnews/tabnews-go"
)

type seriesFunc func(context.Context) (*tabnews.Result[[]tabnews.StatusPoint], error)

func newAnalyticsCmd(a *app) *cobra.Command {
	analyticsCmd := &cobra.Command{Use: "analytics", Short: "Daily platform statistics"}

	series := func(name, short string, pick func(*tabnews.Client) seriesFunc) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.client()
				if err != nil {
					return err
				}
				res, err := pick(c)(cmd.Context())
				return render(a, res, err)
			},
		}
	}
	analyticsCmd.AddCommand(
		series("users", "Users created per day", func(c *tabnews.Client) seriesFunc { return c.UserAnalytics }),
		series("posts", "Root contents published per day", func(c *tabnews.Client) seriesFunc { return c.PostAnalytics }),
		series("comments", "Comments published per day", func(c *tabnews.Client) seriesFunc { return c.CommentsAnalytics }),
	)

	analyticsCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Fetch every series concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			all, err := fetchAll(cmd.Context(), map[string]seriesFunc{
				"users":    c.UserAnalytics,
				"posts":    c.PostAnalytics,
				"comments": c.CommentsAnalytics,
			})
			if err != nil {
				if f, ok := tabnews.AsAPIFault(err); ok {
					return a.fault(f)
				}
				return err
			}
			return a.print(all)
		},
	})

	return analyticsCmd
}

// fetchAll runs every series in parallel. The first failure, transport or
// API fault, cancels the rest.
func fetchAll(ctx context.Context, fns map[string]seriesFunc) (map[string][]tabnews.StatusPoint, error) {
	g, gctx := errgroup.WithContext(ctx)
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	results := make([][]tabnews.StatusPoint, len(names))

	for i, name := range names {
		fn := fns[name]
		g.Go(func() error {
			res, err := fn(gctx)
			if err != nil {
				return err
			}
			if res.Fault != nil {
				return res.Fault
			}
			results[i] = res.Value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]tabnews.StatusPoint, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out, nil
}
