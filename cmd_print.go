package main

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/tui"
)

var printPlain bool

// printCmd writes every slide to stdout
var printCmd = &cobra.Command{
	Use:   "print [dir]",
	Short: "Print every slide to stdout",
	Long: `Renders each slide through the markdown renderer and writes them one
after the other. Styling follows the terminal's color support; --plain
drops it altogether.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(args)
		if err != nil {
			return err
		}
		return printDeck(cmd.OutOrStdout(), d, printPlain)
	},
}

func init() {
	printCmd.Flags().BoolVar(&printPlain, "plain", false, "no colors or styling")
	rootCmd.AddCommand(printCmd)
}

func printDeck(w io.Writer, d *deck.Deck, plain bool) error {
	return tui.RenderDeck(w, d, tui.PrintOptions{
		Width:   outputWidth(),
		Plain:   plain,
		Profile: termenv.NewOutput(w).EnvColorProfile(),
	})
}

// outputWidth is the terminal width, or 80 when stdout is not a terminal.
func outputWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
