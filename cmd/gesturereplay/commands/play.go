package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"openprism/internal/trace"
)

// play: replay trace files and print what they did.
func playCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "play <trace>...",
		Short: "Replay trace files and print the gestures and card changes they cause",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				if err := playFile(out, path, asJSON); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per output")
	return cmd
}

func playFile(w io.Writer, path string, asJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := trace.Read(f)
	if err != nil {
		return err
	}
	p := newPlayer()
	outputs, err := p.Play(records)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		for _, o := range outputs {
			if err := enc.Encode(o); err != nil {
				return err
			}
		}
		return nil
	}
	fmt.Fprintf(w, "%s (%d records)\n", path, len(records))
	for _, o := range outputs {
		fmt.Fprintf(w, "  %s\n", o)
	}
	fmt.Fprintf(w, "  final position %d\n", p.Position())
	return nil
}
