package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tabnews "github.com/tabnews/tabnews-go"
)

func newPostsCmd(a *app) *cobra.Command {
	postsCmd := &cobra.Command{Use: "posts", Short: "Content operations"}

	var page, perPage int
	var strategy string
	params := func() *tabnews.ContentParams {
		return &tabnews.ContentParams{Page: page, PerPage: perPage, Strategy: tabnews.Strategy(strategy)}
	}
	addPaging := func(cmd *cobra.Command) {
		cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number (server default when 0)")
		cmd.Flags().IntVar(&perPage, "per-page", 0, "Items per page (server default when 0)")
		cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Ordering: new, old or relevant")
	}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List published contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.ListPosts(cmd.Context(), params())
			return render(a, res, err)
		},
	}
	addPaging(listCmd)
	postsCmd.AddCommand(listCmd)

	// user
	userCmd := &cobra.Command{
		Use:   "user USERNAME",
		Short: "List contents of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.ListPostsByUser(cmd.Context(), args[0], params())
			return render(a, res, err)
		},
	}
	addPaging(userCmd)
	postsCmd.AddCommand(userCmd)

	// get
	postsCmd.AddCommand(&cobra.Command{
		Use:   "get USERNAME SLUG",
		Short: "Show a single content with its body",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetPostDetails(cmd.Context(), args[0], args[1])
			return render(a, res, err)
		},
	})

	// comments
	postsCmd.AddCommand(&cobra.Command{
		Use:   "comments USERNAME SLUG",
		Short: "List the comment tree of a content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetPostComments(cmd.Context(), args[0], args[1])
			return render(a, res, err)
		},
	})

	// thumbnail
	var outPath string
	thumbCmd := &cobra.Command{
		Use:   "thumbnail USERNAME SLUG",
		Short: "Download the thumbnail image of a content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetPostThumbnail(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if res.Fault != nil {
				return a.fault(res.Fault)
			}
			if outPath == "" {
				_, err = a.out.Write(res.Value)
				return err
			}
			if err := os.WriteFile(outPath, res.Value, 0o644); err != nil {
				return fmt.Errorf("write thumbnail: %w", err)
			}
			a.log.Info().Str("path", outPath).Int("bytes", len(res.Value)).Msg("thumbnail saved")
			return nil
		},
	}
	thumbCmd.Flags().StringVar(&outPath, "out", "", "File to write (stdout when empty)")
	postsCmd.AddCommand(thumbCmd)

	return postsCmd
}
