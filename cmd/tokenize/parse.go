package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

var (
	parseSticky  bool
	parseNoColor bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseSticky, "sticky-link", false, "mark emitted links as sticky")
	parseCmd.Flags().BoolVar(&parseNoColor, "no-color", false, "disable colorized output even on a tty")
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Tokenize a single message and print its token stream",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		opts := tokenizer.DefaultOptions()
		opts.StickyLink = parseSticky

		toks := tokenizer.Parse(text, opts)

		useColor := !parseNoColor && isatty.IsTerminal(os.Stdout.Fd())
		for _, tok := range toks {
			printToken(cmd.OutOrStdout(), tok, useColor)
		}
		return nil
	},
}

func printToken(w interface{ Write([]byte) (int, error) }, tok tokenizer.Token, useColor bool) {
	label, c := tokenKindLabel(tok)
	line := fmt.Sprintf("%-12s %q\n", label, tok.Value)
	if useColor {
		line = c.Sprintf("%-12s", label) + fmt.Sprintf(" %q\n", tok.Value)
	}
	fmt.Fprint(w, line)
}

func tokenKindLabel(tok tokenizer.Token) (string, *color.Color) {
	switch tok.Kind {
	case tokenizer.KindText:
		return "text", color.New(color.FgWhite)
	case tokenizer.KindNewline:
		return "newline", color.New(color.FgHiBlack)
	case tokenizer.KindEmoji:
		return "emoji", color.New(color.FgYellow)
	case tokenizer.KindUserSticker:
		return "sticker", color.New(color.FgMagenta)
	case tokenizer.KindMention:
		return "mention", color.New(color.FgCyan)
	case tokenizer.KindCommand:
		return "command", color.New(color.FgGreen)
	case tokenizer.KindHashTag:
		return "hashtag", color.New(color.FgBlue)
	case tokenizer.KindLink:
		return "link", color.New(color.FgHiBlue, color.Underline)
	case tokenizer.KindMarkdown:
		return "markdown", color.New(color.FgHiMagenta)
	default:
		return "unknown", color.New(color.FgRed)
	}
}
