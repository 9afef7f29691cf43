package main

import (
	"fmt"
	"strings"

	"commit-assistant/internal/ai"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt...]",
	Short: "Send a prompt to the chat model and print the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.OllamaModel = model
			cfg.OpenAIModel = model
		}

		prompt := strings.TrimSpace(strings.Join(args, " "))
		if prompt == "" {
			prompt = ai.DefaultPrompt
		}

		resp, err := newProvider().Chat(cmd.Context(), ai.UserPrompt(prompt))
		if err != nil {
			// Failures are reported, not propagated through the exit code.
			logger.Error("chat failed", "err", err)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
		return nil
	},
}
