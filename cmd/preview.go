package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/story"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview concept-trainer stories for a step (no database)",
	Long: `Generate and interactively answer concept-trainer questions for one step.

This is a stateless developer tool: no journal, no LLM request logging.
Useful for evaluating story quality from the configured LLM provider.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("step", "A", "Trainer step: A, B, C or D")
	previewCmd.Flags().Int("count", 5, "Number of questions")
	previewCmd.Flags().Bool("template", false, "Use template stories even when an LLM is configured")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	stepVal, _ := cmd.Flags().GetString("step")
	count, _ := cmd.Flags().GetInt("count")
	templateOnly, _ := cmd.Flags().GetBool("template")

	profile, ok := catalog.LookupProfile(catalog.ProfileID(strings.ToUpper(stepVal)))
	if !ok {
		return fmt.Errorf("unknown step %q: must be A, B, C or D", stepVal)
	}
	if count > 0 {
		profile.Count = count
	}

	ctx := context.Background()
	var teller story.Teller = story.Template{}
	if llmCfg, ok := cfg.LLMConfig(); ok && !templateOnly {
		// No EventRepo, so requests are not journaled.
		provider, err := llm.NewProvider(ctx, llmCfg, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		teller = story.NewLLM(provider)
		fmt.Fprintf(cmd.OutOrStdout(), "Provider: %s (%s)\n", provider.Name(), provider.ModelID())
	}

	w := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	questions := problemgen.Generate(nil, profile)

	fmt.Fprintf(w, "Step %s — %s, %d questions\n\n", profile.ID, profile.Label, len(questions))

	var correct int
	for i, q := range questions {
		st := teller.Tell(ctx, profile, q)

		fmt.Fprintf(w, "── Question %d/%d (%s) ──\n", i+1, len(questions), st.Source)
		fmt.Fprintln(w, st.Text)
		fmt.Fprintln(w, q.Prompt())

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprint(w, "(skipped)\n\n")
			continue
		}

		ok, valid := problemgen.CheckAnswer(answer, q)
		switch {
		case !valid:
			fmt.Fprintf(w, "Not a number. Answer: %d\n", q.Expected())
		case ok:
			correct++
			fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
		default:
			fmt.Fprintf(w, "\033[31m✗ Wrong.\033[0m Answer: %d\n", q.Expected())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "── Summary: %d/%d correct ──\n", correct, len(questions))
	return nil
}
