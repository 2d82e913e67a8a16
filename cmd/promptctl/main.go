// Command promptctl searches the prompt library, builds bookmarklets and
// validates a content root from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"homepage/internal/content"
	"homepage/internal/repositories"
	"homepage/internal/services"
)

var (
	contentDir string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "promptctl",
	Short:         "Work with the homepage prompt library",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	defaultDir := os.Getenv("CONTENT_DIR")
	if defaultDir == "" {
		defaultDir = "content"
	}
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", defaultDir, "content root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(searchCmd, bookmarkletCmd, validateCmd)
}

func loadPromptService() (services.PromptService, error) {
	c, err := content.New(contentDir)
	if err != nil {
		return nil, err
	}
	return services.NewPromptService(repositories.NewPromptRepository(c)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
