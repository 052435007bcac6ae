package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/config"
	"github.com/abhisek/kakezan/internal/logging"
	"github.com/abhisek/kakezan/internal/store"
)

var (
	// cfg is loaded once per invocation by loadConfig.
	cfg      *config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "kakezan",
	Short: "Kuku multiplication drills for kids",
	Long: "kakezan — terminal drills for the Japanese multiplication table (九九): " +
		"what multiplication means, shape puzzles, and listening to the kuku chant.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "Config file (default $XDG_CONFIG_HOME/kakezan/config.yaml)")
	f.String("db", "", "Path to SQLite journal (overrides KAKEZAN_DB env var)")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.String("log-file", "", "Write logs to this file")
	f.String("speech", "none", "Speech fallback: none, google, openai or gemini")
	f.String("clips", "", "Directory holding the kuku/ clip folder")
	f.Float64("rate", 0.95, "Speaking rate (0.7-1.1)")
	f.Duration("gap", 0, "Pause between phrases (200ms-1.2s)")
	f.Bool("no-intro", false, "Skip the introduction before each dan")

	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges defaults, config file, environment and flags, then
// sets up logging. The TUI owns the terminal, so it only logs to a file.
func loadConfig(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("config")
	c, err := config.Load(config.Options{File: file, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	var fallback io.Writer = os.Stderr
	if cmd == rootCmd {
		fallback = io.Discard
	}
	_, closer, err := logging.Setup(c.Log.Level, c.Log.File, fallback)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	cfg = c
	closeLog = closer
	return nil
}

// resolveDBPath returns the journal path from config (--db flag or
// KAKEZAN_DB), falling back to the default XDG path.
func resolveDBPath() (string, error) {
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the journal at the resolved path.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(context.Background(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
