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

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(c types.Category) int64 { return c.ID })
		if err := container.Fetch(cmd.Context(), p.categories.List); err != nil {
			fail(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG")
		for _, category := range container.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", category.ID, category.Name, category.Slug)
		}
		w.Flush()
	},
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
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

		category, err := p.categories.Get(cmd.Context(), id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("ID:   %d\n", category.ID)
		fmt.Printf("Name: %s\n", category.Name)
		fmt.Printf("Slug: %s\n", category.Slug)
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	Run: func(cmd *cobra.Command, args []string) {
		category, err := categoryFromFlags(cmd)
		if err != nil {
			fail(err)
		}

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(c types.Category) int64 { return c.ID })
		created, err := container.Create(cmd.Context(), func(ctx context.Context) (types.Category, error) {
			return p.categories.Create(ctx, category)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("created category %d: %s (%s)\n", created.ID, created.Name, created.Slug)
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseIDArg(args[0])
		if err != nil {
			fail(err)
		}
		category, err := categoryFromFlags(cmd)
		if err != nil {
			fail(err)
		}
		category.ID = id

		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}

		container := state.NewContainer(func(c types.Category) int64 { return c.ID })
		updated, err := container.Update(cmd.Context(), id, func(ctx context.Context) (types.Category, error) {
			return p.categories.Update(ctx, id, category)
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("updated category %d: %s (%s)\n", updated.ID, updated.Name, updated.Slug)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
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

		container := state.NewContainer(func(c types.Category) int64 { return c.ID })
		if err := container.Delete(cmd.Context(), id, func(ctx context.Context) error {
			return p.categories.Delete(ctx, id)
		}); err != nil {
			fail(err)
		}
		fmt.Printf("deleted category %d\n", id)
	},
}

func categoryFromFlags(cmd *cobra.Command) (types.Category, error) {
	name, _ := cmd.Flags().GetString("name")
	slug, _ := cmd.Flags().GetString("slug")

	if err := checkMinLen("name", name, 2); err != nil {
		return types.Category{}, err
	}

	return types.Category{
		Name: strings.TrimSpace(name),
		Slug: strings.TrimSpace(slug),
	}, nil
}

func addCategoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "category name")
	cmd.Flags().String("slug", "", "URL slug (derived from name when empty)")
}

func init() {
	addCategoryFlags(categoriesCreateCmd)
	addCategoryFlags(categoriesUpdateCmd)

	categoriesCmd.AddCommand(categoriesListCmd, categoriesGetCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
