/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dashboardCmd mirrors the panel's landing page: one card per collection.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show collection counts",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		ctx := cmd.Context()
		posts, err := p.posts.List(ctx)
		if err != nil {
			fail(err)
		}
		authors, err := p.authors.List(ctx)
		if err != nil {
			fail(err)
		}
		categories, err := p.categories.List(ctx)
		if err != nil {
			fail(err)
		}

		fmt.Printf("posts:      %d\n", len(posts))
		fmt.Printf("authors:    %d\n", len(authors))
		fmt.Printf("categories: %d\n", len(categories))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
