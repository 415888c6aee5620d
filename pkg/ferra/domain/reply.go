package domain

import (
	"fmt"
	"strings"
)

// buildReply turns a tool result into the chat reply: the tool's output in a fenced code block, prepended with
// whatever diagnostics accumulated along the way. On failure only stderr is shown; on success stderr (if any)
// comes before stdout. When the assembled reply wouldn't fit into a single chat message, the pre-formatted
// code is uploaded as a gist and a deep link is sent instead. A gist upload failure fails the whole command.
func (s *CommandService) buildReply(result ToolResult, code string, flags CommandFlags, diagnostics string) (string, error) {
	var output string
	switch {
	case !result.Success:
		output = result.Stderr
	case result.Stderr == "":
		output = result.Stdout
	default:
		output = result.Stderr + "\n" + result.Stdout
	}

	if strings.TrimSpace(output) == "" {
		return diagnostics + "``` ```", nil
	}

	reply := diagnostics + "```rust\n" + output + "```"
	if len(reply) <= s.messageSizeLimit {
		return reply, nil
	}

	gistID, err := s.playground.PostGist(code)
	if err != nil {
		return "", fmt.Errorf("failed to upload the code as a gist: %w", err)
	}
	return diagnostics + "Output too large. Playground link: " + s.gistURL(flags, gistID), nil
}

// gistURL builds a deep link which reopens the uploaded code with the same channel, mode and edition.
func (s *CommandService) gistURL(flags CommandFlags, gistID string) string {
	return fmt.Sprintf(
		"%s/?version=%s&mode=%s&edition=%s&gist=%s",
		s.playgroundURL,
		flags.Channel,
		flags.Mode,
		flags.Edition,
		gistID,
	)
}
