package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect journaled story requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent story requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		session, _ := cmd.Flags().GetString("session")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}

		var rows [][]string
		for _, e := range events {
			switch {
			case purpose != "" && e.Purpose != purpose,
				session != "" && !strings.HasPrefix(e.SessionID, session),
				failed && e.Success:
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗ " + truncate(e.ErrorMessage, 30)
			}
			rows = append(rows, []string{
				strconv.Itoa(e.ID),
				stamp(e.Timestamp),
				e.Purpose,
				truncate(e.SessionID, 8),
				e.ItemKey,
				truncate(e.Provider+"/"+e.Model, 32),
				fmt.Sprintf("%d/%d", e.InputTokens, e.OutputTokens),
				fmt.Sprintf("%dms", e.LatencyMs),
				ok,
			})
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No LLM requests found.")
			return nil
		}
		printTable(cmd.OutOrStdout(),
			[]string{"ID", "Time", "Purpose", "Session", "Item", "Model", "Tokens", "Latency", "OK"}, rows)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get llm event %d: %w", id, err)
		}
		if e == nil {
			return fmt.Errorf("llm event %d not found", id)
		}

		w := cmd.OutOrStdout()
		printTable(w, []string{"Field", "Value"}, [][]string{
			{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Purpose", e.Purpose},
			{"Session", orDash(e.SessionID)},
			{"Item", orDash(e.ItemKey)},
			{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"Error", orDash(e.ErrorMessage)},
		})
		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Fprintf(w, "\n── %s %s\n%s\n", part.title, strings.Repeat("─", 50), orDash(part.body))
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(w, "No LLM usage recorded yet.")
			return nil
		}

		var rows [][]string
		var calls, in, out int
		for _, u := range byPurpose {
			rows = append(rows, []string{u.Purpose, strconv.Itoa(u.Calls),
				strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), fmt.Sprintf("%dms", u.AvgLatencyMs)})
			calls, in, out = calls+u.Calls, in+u.InputTokens, out+u.OutputTokens
		}
		rows = append(rows, []string{"total", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), ""})
		printTable(w, []string{"Purpose", "Calls", "Input", "Output", "Avg latency"}, rows)

		rows = rows[:0]
		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if p, ok := llm.LookupPrice(u.Model); ok {
				c := p.Cost(u.InputTokens, u.OutputTokens)
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			rows = append(rows, []string{truncate(u.Model, 32), strconv.Itoa(u.Calls),
				strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost})
		}
		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		rows = append(rows, []string{label, "", "", "", formatCost(total)})
		printTable(w, []string{"Model", "Calls", "Input", "Output", "Cost (USD)"}, rows)

		if len(unpriced) > 0 {
			fmt.Fprintf(w, "No price known for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only this purpose, e.g. story")
	llmListCmd.Flags().StringP("session", "s", "", "Only requests from sessions with this ID prefix")
	llmListCmd.Flags().Bool("failed", false, "Only failed requests")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
