package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"homepage/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the content root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := content.New(contentDir)
		if err != nil {
			return err
		}
		snap := c.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d prompts, %d tiles, %d projects, %d posts\n",
			len(snap.Prompts), len(snap.Tiles), len(snap.Projects), len(snap.Posts))
		return nil
	},
}
