package ai

import "commit-assistant/internal/status"

// DefaultPrompt is sent by the chat command when no prompt is given.
const DefaultPrompt = "Write me a professional email to send to a client, thanking them for trusting us."

// CommitPrompt asks the model for a commit subject line describing the
// recognized change lines of report.
func CommitPrompt(report string) ChatRequest {

	return ChatRequest{
		Messages: []Message{
			{
				Role: RoleSystem,
				Content: `You write git commit subject lines.
Reply with ONE line, imperative mood, at most 72 characters, no quotes, no trailing period.`,
			},
			{
				Role: RoleUser,
				Content: `Changes:
` + status.Filter(report) + `

Write the commit subject line.`,
			},
		},
	}
}
