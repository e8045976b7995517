/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spellcms/spellcms/internal/client"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		p := newPanel()
		result, err := p.auth.Register(cmd.Context(), client.Registration{
			Email:    email,
			Password: password,
			Name:     name,
		})
		if err != nil {
			fail(err)
		}
		if err := p.session.Set(result.Token, result.User); err != nil {
			fail(err)
		}
		fmt.Printf("registered and signed in as %s <%s>\n", result.User.Name, result.User.Email)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin panel",
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		p := newPanel()
		result, err := p.auth.Login(cmd.Context(), client.Credentials{
			Email:    email,
			Password: password,
		})
		if err != nil {
			fail(err)
		}
		if err := p.session.Set(result.Token, result.User); err != nil {
			fail(err)
		}
		fmt.Printf("signed in as %s <%s>\n", result.User.Name, result.User.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.session.Clear(); err != nil {
			fail(err)
		}
		fmt.Println("signed out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if err := p.requireSession(); err != nil {
			fail(err)
		}
		user := p.session.User()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the panel theme preference",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := newPanel()
		if len(args) == 0 {
			fmt.Println(p.session.Theme())
			return
		}
		if err := p.session.SetTheme(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("theme set to %s\n", args[0])
	},
}

func init() {
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("name")

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, themeCmd)
}
