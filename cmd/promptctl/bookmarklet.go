package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"homepage/internal/prompts"
)

var clipboardWriteAll = clipboard.WriteAll

var (
	bookmarkletCopy   bool
	bookmarkletVerify bool
)

var bookmarkletCmd = &cobra.Command{
	Use:   "bookmarklet <id>",
	Short: "Print the bookmarklet for a prompt",
	Long: `Prints the javascript: URL that inserts the prompt into the chat
input of ChatGPT, Gemini or Claude. Drag it to the bookmarks bar or
paste it as a bookmark URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmarklet,
}

func init() {
	bookmarkletCmd.Flags().BoolVar(&bookmarkletCopy, "copy", false, "copy the bookmarklet to the clipboard")
	bookmarkletCmd.Flags().BoolVar(&bookmarkletVerify, "verify", false, "decode the payload and check it matches the prompt")
}

func runBookmarklet(cmd *cobra.Command, args []string) error {
	svc, err := loadPromptService()
	if err != nil {
		return err
	}

	bm, err := svc.GenerateBookmarklet(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if bookmarkletVerify {
		p, err := svc.GetPromptByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		text, err := prompts.Payload(bm.Script)
		if err != nil {
			return fmt.Errorf("verify bookmarklet: %w", err)
		}
		if text != p.Content {
			return fmt.Errorf("verify bookmarklet: payload does not match prompt %s", p.ID)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Payload verified")
	}

	if bookmarkletCopy {
		if err := clipboardWriteAll(bm.Script); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied bookmarklet for %q\n", bm.Title)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), bm.Script)
	return nil
}
