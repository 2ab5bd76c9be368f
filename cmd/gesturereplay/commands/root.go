package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"openprism/internal/config"
	"openprism/internal/trace"
)

var (
	configPath string
	cards      int
	cfg        *config.Config
)

// Execute runs the CLI until it finishes or is interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gesturereplay",
		Short:        "Replay recorded touchpad traces through the gesture detector",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cards < 0 {
				return fmt.Errorf("--cards must not be negative, got %d", cards)
			}
			svc := config.NewConfigService()
			if configPath != "" {
				svc = config.NewConfigServiceAt(configPath, nil)
			}
			loaded, err := svc.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is the OpenPrism config)")
	root.PersistentFlags().IntVar(&cards, "cards", 5, "number of cards on the replay timeline")

	root.AddCommand(playCmd(), scanCmd(), listenCmd())
	return root
}

// newPlayer builds a player with the loaded touchpad settings
func newPlayer() *trace.Player {
	return trace.NewPlayer(
		trace.WithCards(cards),
		trace.WithThreshold(cfg.Touchpad.SwipeThreshold),
		trace.WithPageWidth(cfg.Cards.PageWidth),
		trace.WithLongPress(cfg.Touchpad.LongPress()),
	)
}
