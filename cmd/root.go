/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spellcms/spellcms/config"
	"github.com/spellcms/spellcms/internal/client"
	"github.com/spellcms/spellcms/internal/session"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spellcms",
	Short: "SpellCMS record store server and admin panel",
	Long: `SpellCMS manages blog posts, authors, and categories.

The same binary runs the record store server (spellcms server) and the
admin panel commands that talk to it (login, posts, authors, categories).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// panel bundles what every admin command needs: the session and the
// typed services over one shared HTTP client.
type panel struct {
	session    *session.Manager
	auth       *client.AuthService
	posts      *client.PostService
	authors    *client.AuthorService
	categories *client.CategoryService
}

func newPanel() *panel {
	cfg := config.LoadConfig()
	sess := session.NewManager(cfg.Client.SessionFile)
	api := client.New(cfg.Client.BaseURL, sess)

	return &panel{
		session:    sess,
		auth:       client.NewAuthService(api),
		posts:      client.NewPostService(api),
		authors:    client.NewAuthorService(api),
		categories: client.NewCategoryService(api),
	}
}

// requireSession is the route guard for protected commands. Without a
// session it redirects to the login view.
func (p *panel) requireSession() error {
	if err := p.session.Require(); err != nil {
		return fmt.Errorf("not logged in; run `spellcms login` first")
	}
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
