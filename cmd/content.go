package cmd

import (
	"fmt"
	"sort"
	"strings"

	"sitefeed/internal/content"
	"sitefeed/internal/markdown"
	"sitefeed/internal/output"

	"github.com/spf13/cobra"
)

// contentCmd groups local content collection commands.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and inspect local content collections",
}

func contentDir(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return GetConfig().Content.Dir
}

// validateCmd fails when any entry of any collection is invalid.
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate gadgets and books against their schemas",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := contentDir(args)
		c, err := content.Load(dir)
		if err != nil {
			for _, line := range entryErrors(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), line)
			}
			return fmt.Errorf("content validation failed in %s", dir)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d gadgets, %d books\n", len(c.Gadgets), len(c.Books))
		return nil
	},
}

// entryErrors flattens a joined load error into one line per entry.
func entryErrors(err error) []string {
	var lines []string
	var walk func(error)
	walk = func(e error) {
		if ee, ok := e.(*content.EntryError); ok {
			lines = append(lines, ee.Error())
			return
		}
		if j, ok := e.(interface{ Unwrap() []error }); ok {
			for _, c := range j.Unwrap() {
				walk(c)
			}
			return
		}
		lines = append(lines, e.Error())
	}
	walk(err)
	return lines
}

var listCmd = &cobra.Command{
	Use:       "list <gadgets|books> [dir]",
	Short:     "List the valid entries of a collection",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{content.CollectionGadgets, content.CollectionBooks},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := contentDir(args[1:])
		out := cmd.OutOrStdout()
		switch args[0] {
		case content.CollectionGadgets:
			gadgets, err := content.LoadGadgets(dir)
			if err != nil {
				return err
			}
			tbl := output.NewTable(out, "slug", "name", "category", "tags", "created")
			for _, g := range gadgets {
				tbl.AddRow(g.Slug, g.Name, g.Category, strings.Join(g.Tags, ","), g.CreatedAt)
			}
			return tbl.Render()
		case content.CollectionBooks:
			books, err := content.LoadBooks(dir)
			if err != nil {
				return err
			}
			tbl := output.NewTable(out, "slug", "title", "author", "rating", "read")
			for _, b := range books {
				rating := "-"
				if b.Rating != nil {
					rating = fmt.Sprintf("%g", *b.Rating)
				}
				tbl.AddRow(b.Slug, output.Truncate(b.Title, 50), b.Author, rating, b.ReadDate)
			}
			return tbl.Render()
		default:
			return fmt.Errorf("unknown collection %q (want gadgets or books)", args[0])
		}
	},
}

// inspectCmd prints the frontmatter keys of one content file.
var inspectCmd = &cobra.Command{
	Use:   "inspect <markdown_path>",
	Short: "Parse a content file and print its frontmatter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := markdown.ParseFile(args[0])
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(doc.Frontmatter))
		for k := range doc.Frontmatter {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tbl := output.NewTable(cmd.OutOrStdout(), "key", "value")
		for _, k := range keys {
			tbl.AddRow(k, fmt.Sprintf("%v", doc.Frontmatter[k]))
		}
		if err := tbl.Render(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "body bytes: %d\n", len(doc.Body))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(validateCmd, listCmd, inspectCmd)
	rootCmd.AddCommand(contentCmd)
}
