package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/playback"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Play one dan of the kuku chant without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dan, _ := cmd.Flags().GetInt("dan")
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := []playback.Option{playback.WithStepHook(printStep(cmd.OutOrStdout()))}
		if !noJournal {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			opts = append(opts, playback.WithJournal(st.EventRepo()))
		}

		newEngine, err := newEngineFactory(ctx, opts...)
		if err != nil {
			return err
		}
		engine := newEngine()
		defer engine.Close()

		if err := engine.Select(dan); err != nil {
			return fmt.Errorf("select dan %d: %w", dan, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", catalog.DanName(dan))
		return waitForEnd(ctx, engine)
	},
}

// waitForEnd blocks until the last phrase of the selected dan has played.
func waitForEnd(ctx context.Context, engine *playback.Engine) error {
	updates := engine.Updates()
	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-updates:
			if !ok {
				return nil
			}
			if st.Phase == playback.PhasePlaying && st.AtEnd && !st.Running {
				return nil
			}
		}
	}
}

func printStep(w io.Writer) func(playback.StepEvent) {
	return func(ev playback.StepEvent) {
		text := catalog.IntroText(ev.Dan)
		if ev.Kind == playback.StepPhrase {
			if p, ok := catalog.LookupPhrase(ev.Dan, ev.Multiplier); ok {
				text = fmt.Sprintf("%d × %d = %-2d  %s", p.Dan, p.Multiplier, p.Result, p.Reading)
			}
		}
		fmt.Fprintf(w, "  [%-6s] %s\n", ev.Source, text)
	}
}

func init() {
	listenCmd.Flags().IntP("dan", "d", 2, "Dan to play (1-9)")
	listenCmd.Flags().Bool("no-journal", false, "Do not record playback in the journal")
}
