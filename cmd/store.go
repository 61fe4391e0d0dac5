package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sitefeed/internal/output"
	"sitefeed/internal/supabase"

	"github.com/spf13/cobra"
)

var (
	storeFormat string
	storeCli    *supabase.Client
)

// storeCmd reads records from the remote store.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Read gadgets and books from the storage backend",
	// Construct the client before any subcommand runs so missing credentials
	// stop the process up front.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli, err := storageClient(GetConfig())
		if err != nil {
			return err
		}
		storeCli = cli
		return nil
	},
}

var storeGadgetsCmd = &cobra.Command{
	Use:   "gadgets [slug]",
	Short: "List gadgets, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := storeCli
		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()
		if len(args) == 1 {
			g, err := cli.GadgetBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			return output.JSON(cmd.OutOrStdout(), g)
		}
		rows, err := cli.ListGadgets(ctx)
		if err != nil {
			return err
		}
		if strings.EqualFold(storeFormat, "json") {
			return output.JSON(cmd.OutOrStdout(), rows)
		}
		tbl := output.NewTable(cmd.OutOrStdout(), "slug", "name", "category", "updated")
		for _, g := range rows {
			tbl.AddRow(g.Slug, g.Name, g.Category, g.UpdatedAt)
		}
		return tbl.Render()
	},
}

var storeBooksCmd = &cobra.Command{
	Use:   "books [slug]",
	Short: "List books, or show one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := storeCli
		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()
		if len(args) == 1 {
			b, err := cli.BookBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			return output.JSON(cmd.OutOrStdout(), b)
		}
		rows, err := cli.ListBooks(ctx)
		if err != nil {
			return err
		}
		if strings.EqualFold(storeFormat, "json") {
			return output.JSON(cmd.OutOrStdout(), rows)
		}
		tbl := output.NewTable(cmd.OutOrStdout(), "slug", "title", "author", "rating", "updated")
		for _, b := range rows {
			rating := "-"
			if b.Rating != nil {
				rating = fmt.Sprintf("%g", *b.Rating)
			}
			tbl.AddRow(b.Slug, output.Truncate(b.Title, 50), b.Author, rating, b.UpdatedAt)
		}
		return tbl.Render()
	},
}

func init() {
	storeCmd.PersistentFlags().StringVar(&storeFormat, "format", "table", "list output format: table or json")
	storeCmd.AddCommand(storeGadgetsCmd, storeBooksCmd)
	rootCmd.AddCommand(storeCmd)
}
