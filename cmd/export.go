/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spellcms/spellcms/config"
	"github.com/spellcms/spellcms/internal/db"
	"github.com/spellcms/spellcms/internal/store"
	"github.com/spf13/cobra"
)

// exportCmd dumps the whole record store document to stdout, for backups
// or for seeding another environment.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the record store document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		var backend store.Backend
		switch cfg.Store.Driver {
		case "", "file":
			backend = store.NewFileBackend(cfg.Store.FilePath)
		case "postgres":
			conn, err := db.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer conn.Close()
			backend = store.NewPostgresBackend(conn)
		default:
			return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
		}

		doc, err := store.New(backend).Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
