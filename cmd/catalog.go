package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/audio"
	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/playback"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the kuku table and the trainer steps",
}

var catalogKukuCmd = &cobra.Command{
	Use:   "kuku",
	Short: "Print the kuku phrases and which clips are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		dan, _ := cmd.Flags().GetInt("dan")

		dans := make([]int, 0, catalog.MaxDan)
		switch {
		case dan == 0:
			for d := catalog.MinDan; d <= catalog.MaxDan; d++ {
				dans = append(dans, d)
			}
		case catalog.ValidDan(dan):
			dans = append(dans, dan)
		default:
			return fmt.Errorf("dan %d out of range %d-%d", dan, catalog.MinDan, catalog.MaxDan)
		}

		settings := cfg.PlaybackSettings()
		clips := audio.NewPlayer(os.DirFS(cfg.ClipRoot()), nil)

		w := cmd.OutOrStdout()
		for _, d := range dans {
			fmt.Fprintf(w, "%sのだん\n", catalog.DanName(d))
			printTable(w, []string{"", "=", "Reading", "Clip"}, kukuRows(clips, settings, d))
		}
		return nil
	},
}

// kukuRows lists one dan's phrases with whether each recorded clip is on
// disk. Missing clips are voiced by the speech fallback.
func kukuRows(clips interface{ Exists(string) bool }, s playback.Settings, dan int) [][]string {
	mark := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "-"
	}
	rows := [][]string{{"intro", "", catalog.IntroText(dan), mark(clips.Exists(s.IntroPath(dan)))}}
	for _, p := range catalog.PhrasesForDan(dan) {
		rows = append(rows, []string{
			fmt.Sprintf("%d × %d", p.Dan, p.Multiplier),
			strconv.Itoa(p.Result),
			p.Reading,
			mark(clips.Exists(s.PhrasePath(p.Dan, p.Multiplier))),
		})
	}
	return rows
}

var catalogStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the concept trainer steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0, len(catalog.Profiles()))
		for _, p := range catalog.Profiles() {
			rows = append(rows, []string{
				string(p.ID), p.Label,
				fmt.Sprintf("%d-%d", p.AMin, p.AMax),
				fmt.Sprintf("%d-%d", p.BMin, p.BMax),
				strconv.Itoa(p.Count),
				fmt.Sprintf("%s%s / %s", p.ItemEmoji, p.ItemLabel, p.ContainerLabel),
			})
		}
		printTable(cmd.OutOrStdout(), []string{"ID", "Label", "a", "b", "Count", "Story"}, rows)
		return nil
	},
}

func init() {
	catalogKukuCmd.Flags().IntP("dan", "d", 0, "Only this dan (1-9)")

	catalogCmd.AddCommand(catalogKukuCmd)
	catalogCmd.AddCommand(catalogStepsCmd)
}
