// Command tokenize is the CLI front end for the tokenizer: a "parse"
// subcommand for one-off, colorized inspection of a message, and a
// "serve" subcommand that starts the HTTP gateway. Structured after
// Conduit's cmd/conduit/main.go root-command-with-subcommands layout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize chat messages",
		Long:  "tokenize scans chat messages into a flat stream of typed tokens (text, links, mentions, markdown, emoji and more).",
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
