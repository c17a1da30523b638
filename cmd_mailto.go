package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pitchdeck/internal/opener"
)

var (
	mailtoSlide int
	mailtoOpen  bool
)

// mailtoCmd prints the call-to-action link of a slide
var mailtoCmd = &cobra.Command{
	Use:   "mailto [dir]",
	Short: "Print the call-to-action email link of a slide",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMailto,
}

func init() {
	mailtoCmd.Flags().IntVarP(&mailtoSlide, "slide", "s", 1, "slide number, starting at 1")
	mailtoCmd.Flags().BoolVar(&mailtoOpen, "open", false, "open the link instead of printing it")
	rootCmd.AddCommand(mailtoCmd)
}

func runMailto(cmd *cobra.Command, args []string) error {
	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	if mailtoSlide < 1 || mailtoSlide > d.Len() {
		return fmt.Errorf("slide %d out of range 1-%d", mailtoSlide, d.Len())
	}
	slide := d.At(mailtoSlide - 1)
	if !slide.HasCTA() {
		return fmt.Errorf("slide %d (%s) has no call to action", mailtoSlide, slide.Title)
	}

	composer, err := cfg.Composer()
	if err != nil {
		return fmt.Errorf("building call to action: %w", err)
	}
	msg, err := composer.Compose(d, mailtoSlide-1)
	if err != nil {
		return err
	}

	if mailtoOpen {
		logger.Info("opening mail link", zap.Int("slide", mailtoSlide))
		// The handler must outlive this process.
		err := newOpener().Open(context.WithoutCancel(cmd.Context()), msg.URL())
		switch {
		case errors.Is(err, opener.ErrCopiedToClipboard):
			logger.Warn("no URL opener, copied to clipboard", zap.String("url", msg.URL()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "No mail client found; link copied to clipboard")
			return err
		case err != nil:
			return fmt.Errorf("opening email composer: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.URL())
	return err
}
