package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"homepage/internal/models"
)

var (
	searchCategory string
	searchPlatform string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search prompts by text, category and platform",
	Long: `Lists the prompts matching a case-insensitive query over title,
description and keywords, sorted by title.

Example:
  promptctl search rust --platform claude
  promptctl search --category music`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", models.SelectAll, "category filter")
	searchCmd.Flags().StringVarP(&searchPlatform, "platform", "p", models.SelectAll, "platform filter")
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := loadPromptService()
	if err != nil {
		return err
	}

	criteria := models.FilterCriteria{
		Category: models.Category(searchCategory),
		Platform: models.Platform(searchPlatform),
	}
	if len(args) == 1 {
		criteria.Query = args[0]
	}

	res, err := svc.Search(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPLATFORMS")
	for _, p := range res.Prompts {
		platforms := make([]string, 0, len(p.Platforms))
		for _, pl := range p.Platforms {
			platforms = append(platforms, string(pl))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, strings.Join(platforms, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nShowing %d of %d prompts\n", res.Count, res.Total)
	return nil
}
