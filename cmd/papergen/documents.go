// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HorizonHnk/papergen/internal/store"
	"github.com/HorizonHnk/papergen/pkg/types"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage saved documents",
	Long: `Documents lists and deletes saved documents. The store keeps the
sanitized markup plus the user input that produced it; exported artifacts
are never stored and are regenerated on demand by papergen export.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's saved documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := mustString(cmd, "user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		docs, err := s.List(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Fprintf(os.Stderr, "No saved documents for user %s\n", userID)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tTEMPLATE\tTITLE")
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				d.ID, d.CreatedAt.Format("2006-01-02 15:04"), d.Template, d.Title)
		}
		return w.Flush()
	},
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete saved documents by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, id := range args {
			if err := s.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting %s: %w", id, err)
			}
			fmt.Fprintf(os.Stderr, "Deleted %s\n", id)
		}
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return store.Open(types.StoreConfig{DatabasePath: dbPath})
}

func init() {
	documentsCmd.PersistentFlags().String("db", "papergen.db", "document store database file")
	documentsListCmd.Flags().String("user", "", "user whose documents to list")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}
