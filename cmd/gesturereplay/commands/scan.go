package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"openprism/internal/trace"
)

// scan: list trace files, optionally replaying each one.
func scanCmd() *cobra.Command {
	var (
		depth int
		play  bool
	)
	cmd := &cobra.Command{
		Use:   "scan [dir]...",
		Short: "List the trace files below the given directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			out := cmd.OutOrStdout()
			scanner := &trace.Scanner{MaxDepth: depth}

			var playErr error
			n, err := scanner.Scan(cmd.Context(), args, func(path string) {
				if !play {
					fmt.Fprintln(out, path)
					return
				}
				if err := playFile(out, path, false); err != nil && playErr == nil {
					playErr = fmt.Errorf("%s: %w", path, err)
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d traces found\n", n)
			return playErr
		},
	}
	cmd.Flags().IntVar(&depth, "depth", trace.DefaultMaxDepth, "maximum directory depth")
	cmd.Flags().BoolVar(&play, "play", false, "replay every trace found")
	return cmd
}
