package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"commit-assistant/internal/ai"
	"commit-assistant/internal/gitrepo"
	"commit-assistant/internal/message"
	"commit-assistant/internal/observability"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var messageCmd = &cobra.Command{
	Use:   "message [status]",
	Short: "Derive a one-line commit message from git status output",
	Long: `Derive a one-line commit message from git status output.

The status text is taken from the first argument, else from --repo, else from
stdin when it is not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := readReport(cmd, args)
		if err != nil {
			return err
		}

		classifier, err := classifierFromFlags(cmd)
		if err != nil {
			return err
		}

		var provider ai.Provider
		if useAI, _ := cmd.Flags().GetBool("ai"); useAI {
			provider = newProvider()
		}

		msg, err := generate(cmd.Context(), classifier, provider, report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func readReport(cmd *cobra.Command, args []string) (string, error) {

	if len(args) == 1 {
		return args[0], nil
	}

	if repo, _ := cmd.Flags().GetString("repo"); repo != "" {
		return gitrepo.Status(repo)
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(b), nil
}

func classifierFromFlags(cmd *cobra.Command) (*message.Classifier, error) {

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = cfg.MessageLang
	}

	locale, err := message.ParseLocale(lang)
	if err != nil {
		return nil, err
	}

	opts := []message.Option{message.WithLocale(locale)}

	if strict, _ := cmd.Flags().GetBool("strict"); strict || cfg.MessageStrict {
		opts = append(opts, message.WithStrict())
	}
	if structured, _ := cmd.Flags().GetBool("structured"); structured {
		opts = append(opts, message.WithStructuredParser())
	}

	return message.New(opts...), nil
}

// generate prefers the model reply when a provider is given and the report
// has changes; any model failure falls back to the heuristic.
func generate(
	ctx context.Context,
	c *message.Classifier,
	provider ai.Provider,
	report string,
) (string, error) {

	res, err := c.Classify(report)
	if err != nil {
		var xe *message.ExtractionError
		if errors.As(err, &xe) {
			observability.ExtractionErrors.WithLabelValues(string(xe.Kind)).Inc()
		}
		return "", err
	}

	observability.Messages.WithLabelValues(res.Shape.String()).Inc()

	if provider == nil || res.Shape == message.Empty {
		return res.Message, nil
	}

	resp, err := provider.Chat(ctx, ai.CommitPrompt(report))
	if err != nil {
		logger.Warn("ai message failed, using heuristic", "err", err)
		return res.Message, nil
	}

	line := firstLine(resp.Content)
	if line == "" {
		logger.Warn("ai message empty, using heuristic", "model", resp.Model)
		return res.Message, nil
	}

	return line, nil
}

func firstLine(s string) string {

	for _, l := range strings.Split(s, "\n") {
		l = strings.Trim(strings.TrimSpace(l), `"'`+"`")
		if l != "" {
			return l
		}
	}

	return ""
}
