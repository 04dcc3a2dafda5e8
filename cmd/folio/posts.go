package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/folio/internal/config"
	"finitefield.org/folio/internal/posts"
	"finitefield.org/folio/internal/templates/helpers"
)

func newPostsCommand(envFile *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Print the grouped posts listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), config.WithEnvFile(*envFile))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("limit") {
				cfg.Site.PostsLimit = limit
			}

			_, store := buildStore(cfg.Content, zap.NewNop())
			list, err := store.ListPosts(cmd.Context())
			if err != nil {
				return err
			}
			return printListing(cmd.OutOrStdout(), posts.New(cfg.Site.PostsLimit).Group(list))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", posts.DefaultLimit, "number of posts considered")
	return cmd
}

// printListing writes one block per date. The featured post is marked with '*'.
func printListing(w io.Writer, listing posts.Listing) error {
	if len(listing.Groups) == 0 {
		_, err := fmt.Fprintln(w, "no posts")
		return err
	}
	for i, group := range listing.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, helpers.DateLabel(group.Date)); err != nil {
			return err
		}
		for _, entry := range group.Entries {
			marker := " "
			if entry.Featured {
				marker = "*"
			}
			if _, err := fmt.Fprintf(w, " %s %s  /posts/%s\n", marker, entry.Post.Title, entry.Post.Slug); err != nil {
				return err
			}
		}
	}
	return nil
}
