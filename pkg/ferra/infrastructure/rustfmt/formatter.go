package rustfmt

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/domain"
)

// Formatter formats Rust code by piping it through a local rustfmt binary. It implements domain.CodeFormatter.
type Formatter struct {
	path    string
	timeout time.Duration
}

func NewFormatter(config *common.Config) *Formatter {
	return &Formatter{
		path:    config.GetStringOrDefault(domain.ConfigKeyRustfmtPath, "rustfmt"),
		timeout: config.GetDurationOrDefault(domain.ConfigKeyRustfmtTimeout, 10*time.Second),
	}
}

// Format runs rustfmt with the code on stdin. A missing binary or a timeout is reported as an error;
// a non-zero exit (i.e. rustfmt rejected the code) comes back as a ToolResult with Success == false,
// so that callers can decide whether that's fatal for their command.
func (f *Formatter) Format(code string, edition domain.Edition) (domain.ToolResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.path, "--edition", edition.String(), "--color", "never")
	cmd.Stdin = strings.NewReader(code)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		return domain.ToolResult{}, err
	}
	return domain.ToolResult{
		Success: err == nil,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}, nil
}
