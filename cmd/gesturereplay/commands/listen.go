package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"openprism/internal/trace"
)

// listen: replay records streamed over websocket connections.
func listenCmd() *cobra.Command {
	var (
		addr      string
		keepAlive time.Duration
	)
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Accept websocket clients and replay the records they stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			mux := http.NewServeMux()
			mux.Handle("/", trace.NewServer(newPlayer, keepAlive))
			srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Printf("[HTTP] listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8765", "address to listen on")
	cmd.Flags().DurationVar(&keepAlive, "keepalive", trace.DefaultKeepAlive, "close clients that stop answering pings for this long")
	return cmd
}
