/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spellcms/spellcms/internal/state"
	"github.com/spellcms/spellcms/types"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Manage authors",
}

var authorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all authors",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(a types.Author) int64 { return a.ID })
		if err := container.Fetch(cmd.Context(), p.authors.List); err != nil {
			fail(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tBIO")
		for _, author := range container.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", author.ID, author.Name, author.Bio)
		}
		w.Flush()
	},
}

var authorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one author",
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

		author, err := p.authors.Get(cmd.Context(), id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("ID:     %d\n", author.ID)
		fmt.Printf("Name:   %s\n", author.Name)
		fmt.Printf("Avatar: %s\n", author.Avatar)
		fmt.Printf("Bio:    %s\n", author.Bio)
	},
}

var authorsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an author",
	Run: func(cmd *cobra.Command, args []string) {
		author, err := authorFromFlags(cmd)
		if err != nil {
			fail(err)
		}

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(a types.Author) int64 { return a.ID })
		created, err := container.Create(cmd.Context(), func(ctx context.Context) (types.Author, error) {
			return p.authors.Create(ctx, author)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("created author %d: %s\n", created.ID, created.Name)
	},
}

var authorsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an author",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseIDArg(args[0])
		if err != nil {
			fail(err)
		}
		author, err := authorFromFlags(cmd)
		if err != nil {
			fail(err)
		}
		author.ID = id

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(a types.Author) int64 { return a.ID })
		updated, err := container.Update(cmd.Context(), id, func(ctx context.Context) (types.Author, error) {
			return p.authors.Update(ctx, id, author)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("updated author %d: %s\n", updated.ID, updated.Name)
	},
}

var authorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an author",
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

		container := state.NewContainer(func(a types.Author) int64 { return a.ID })
		if err := container.Delete(cmd.Context(), id, func(ctx context.Context) error {
			return p.authors.Delete(ctx, id)
		}); err != nil {
			fail(err)
		}
		fmt.Printf("deleted author %d\n", id)
	},
}

func authorFromFlags(cmd *cobra.Command) (types.Author, error) {
	name, _ := cmd.Flags().GetString("name")
	avatar, _ := cmd.Flags().GetString("avatar")
	bio, _ := cmd.Flags().GetString("bio")

	if err := checkMinLen("name", name, 2); err != nil {
		return types.Author{}, err
	}
	if err := checkMinLen("bio", bio, 5); err != nil {
		return types.Author{}, err
	}
	if err := checkOptionalURL("avatar", avatar); err != nil {
		return types.Author{}, err
	}

	return types.Author{
		Name:   strings.TrimSpace(name),
		Avatar: strings.TrimSpace(avatar),
		Bio:    strings.TrimSpace(bio),
	}, nil
}

func addAuthorFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "author name")
	cmd.Flags().String("avatar", "", "avatar URL")
	cmd.Flags().String("bio", "", "author bio")
}

func init() {
	addAuthorFlags(authorsCreateCmd)
	addAuthorFlags(authorsUpdateCmd)

	authorsCmd.AddCommand(authorsListCmd, authorsGetCmd, authorsCreateCmd, authorsUpdateCmd, authorsDeleteCmd)
	rootCmd.AddCommand(authorsCmd)
}
