/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spellcms/spellcms/internal/state"
	"github.com/spellcms/spellcms/types"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage blog posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(post types.Post) int64 { return post.ID })
		if err := container.Fetch(cmd.Context(), p.posts.List); err != nil {
			fail(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tAUTHOR\tCATEGORY\tTAGS")
		for _, post := range container.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
				post.ID, post.Title, post.Status, post.AuthorID, post.CategoryID,
				strings.Join(post.Tags, ","))
		}
		w.Flush()
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}
		id, err := parseIDArg(args[0])
		if err != nil {
			fail(err)
		}

		post, err := p.posts.Get(cmd.Context(), id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("ID:         %d\n", post.ID)
		fmt.Printf("Title:      %s\n", post.Title)
		fmt.Printf("Status:     %s\n", post.Status)
		fmt.Printf("Author:     %d\n", post.AuthorID)
		fmt.Printf("Category:   %d\n", post.CategoryID)
		fmt.Printf("Tags:       %s\n", strings.Join(post.Tags, ", "))
		fmt.Printf("Cover:      %s\n", post.CoverImage)
		fmt.Printf("Created:    %s\n", post.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("\n%s\n", post.Body)
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Run: func(cmd *cobra.Command, args []string) {
		post, err := postFromFlags(cmd)
		if err != nil {
			fail(err)
		}

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(post types.Post) int64 { return post.ID })
		created, err := container.Create(cmd.Context(), func(ctx context.Context) (types.Post, error) {
			return p.posts.Create(ctx, post)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("created post %d: %s\n", created.ID, created.Title)
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseIDArg(args[0])
		if err != nil {
			fail(err)
		}
		post, err := postFromFlags(cmd)
		if err != nil {
			fail(err)
		}
		post.ID = id

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(post types.Post) int64 { return post.ID })
		updated, err := container.Update(cmd.Context(), id, func(ctx context.Context) (types.Post, error) {
			return p.posts.Update(ctx, id, post)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("updated post %d: %s\n", updated.ID, updated.Title)
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseIDArg(args[0])
		if err != nil {
			fail(err)
		}

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(post types.Post) int64 { return post.ID })
		if err := container.Delete(cmd.Context(), id, func(ctx context.Context) error {
			return p.posts.Delete(ctx, id)
		}); err != nil {
			fail(err)
		}
		fmt.Printf("deleted post %d\n", id)
	},
}

func postFromFlags(cmd *cobra.Command) (types.Post, error) {
	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("body")
	authorID, _ := cmd.Flags().GetInt64("author")
	categoryID, _ := cmd.Flags().GetInt64("category")
	tags, _ := cmd.Flags().GetString("tags")
	status, _ := cmd.Flags().GetString("status")
	cover, _ := cmd.Flags().GetString("cover")

	if err := checkMinLen("title", title, 3); err != nil {
		return types.Post{}, err
	}
	if err := checkMinLen("body", body, 10); err != nil {
		return types.Post{}, err
	}
	if err := checkOptionalURL("cover image", cover); err != nil {
		return types.Post{}, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status != types.StatusDraft && status != types.StatusPublished {
		return types.Post{}, fmt.Errorf("status must be %s or %s", types.StatusDraft, types.StatusPublished)
	}

	return types.Post{
		Title:      strings.TrimSpace(title),
		Body:       strings.TrimSpace(body),
		AuthorID:   authorID,
		CategoryID: categoryID,
		Tags:       splitTags(tags),
		Status:     status,
		CoverImage: strings.TrimSpace(cover),
	}, nil
}

func parseIDArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func addPostFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "post title")
	cmd.Flags().String("body", "", "post body")
	cmd.Flags().Int64("author", 0, "author id")
	cmd.Flags().Int64("category", 0, "category id")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("status", types.StatusDraft, "draft or published")
	cmd.Flags().String("cover", "", "cover image URL")
}

func init() {
	addPostFlags(postsCreateCmd)
	addPostFlags(postsUpdateCmd)

	postsCmd.AddCommand(postsListCmd, postsGetCmd, postsCreateCmd, postsUpdateCmd, postsDeleteCmd)
	rootCmd.AddCommand(postsCmd)
}
