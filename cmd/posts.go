package cmd

import (
	"fmt"
	"strings"

	"sitefeed/internal/aggregate"
	"sitefeed/internal/model"
	"sitefeed/internal/output"

	"github.com/spf13/cobra"
)

var (
	postsPlatform string
	postsFormat   string
	postsLimit    int
)

// postsCmd fetches and prints the merged post list.
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Fetch posts from Qiita and Zenn and print them newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := fetchers(GetConfig(), postsPlatform)
		if err != nil {
			return err
		}
		posts := aggregate.Limit(aggregate.FetchAll(cmd.Context(), fs...), postsLimit)
		return printPosts(cmd, posts, postsFormat)
	},
}

func printPosts(cmd *cobra.Command, posts []model.Post, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return output.JSON(cmd.OutOrStdout(), posts)
	case "table", "":
		tbl := output.NewTable(cmd.OutOrStdout(), "platform", "published", "title", "url")
		for _, p := range posts {
			tbl.AddRow(p.Platform, p.PublishedAt, output.Truncate(p.Title, 60), p.ExternalURL)
		}
		return tbl.Render()
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

func init() {
	postsCmd.Flags().StringVar(&postsPlatform, "platform", "", "only fetch one platform (qiita or zenn)")
	postsCmd.Flags().StringVar(&postsFormat, "format", "table", "output format: table or json")
	postsCmd.Flags().IntVar(&postsLimit, "limit", 0, "maximum number of posts to print (0 = all)")
	rootCmd.AddCommand(postsCmd)
}
