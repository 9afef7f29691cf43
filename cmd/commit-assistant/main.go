package main

import (
	"os"

	"commit-assistant/internal/ai"
	"commit-assistant/internal/cache"
	"commit-assistant/internal/config"
	"commit-assistant/internal/observability"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "commit-assistant",
	Short:         "Commit message heuristics and a local LLM chat client",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	cfg    *config.Config
	logger *observability.Logger
)

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("log-level"); v != "" {
			cfg.LogLevel = v
		}
		logger = observability.NewLogger(cfg)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		logger.Sync()
	}

	rootCmd.PersistentFlags().String("log-level", "", "override LOG_LEVEL (debug|info|warn|error)")

	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)

	messageCmd.Flags().String("repo", "", "read staged changes from the git repository at this path")
	messageCmd.Flags().Bool("strict", false, "fail when a single file path cannot be extracted")
	messageCmd.Flags().Bool("structured", false, "count parsed change lines instead of marker occurrences")
	messageCmd.Flags().String("lang", "", "message language (en|fr), defaults to MESSAGE_LANG")
	messageCmd.Flags().Bool("ai", false, "ask the chat model first, fall back to the heuristic")

	chatCmd.Flags().String("model", "", "override the configured model")

	serveCmd.Flags().String("port", "", "override PORT")
}

func newProvider() ai.Provider {
	return ai.NewProvider(cfg, cache.NewStore(cfg), logger)
}
