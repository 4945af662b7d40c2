package external

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sicproject/backend/internal/pkg/apperrors"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// DefaultNormalizeTimeout bounds one normalizer invocation.
const DefaultNormalizeTimeout = 10 * time.Second

// CommandNormalizer shells out to an external text utility (awk by
// default) to normalize CSV content. The file path is passed as an
// argument, never through a shell.
type CommandNormalizer struct {
	command string
	args    []string
	timeout time.Duration
}

// NewCommandNormalizer builds the default awk-based normalizer.
func NewCommandNormalizer() *CommandNormalizer {
	return &CommandNormalizer{
		command: "awk",
		args:    []string{"-F,", "{print $0}"},
		timeout: DefaultNormalizeTimeout,
	}
}

// NewCommandNormalizerWith builds a normalizer around an arbitrary
// command, used by tests.
func NewCommandNormalizerWith(command string, args []string, timeout time.Duration) *CommandNormalizer {
	return &CommandNormalizer{command: command, args: args, timeout: timeout}
}

// Normalize runs the configured command against the file at path. On
// timeout or non-zero exit the collected partial output is returned with
// the error.
func (n *CommandNormalizer) Normalize(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	args := append(append([]string{}, n.args...), path)
	cmd := exec.CommandContext(ctx, n.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := stdout.String()
	if out == "" {
		out = stderr.String()
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn().Str("path", path).Msg("Normalizer timed out")
			return out, fmt.Errorf("%w: normalizer exceeded %s", apperrors.ErrExternalCallTimeout, n.timeout)
		}
		logger.Warn().Err(err).Str("path", path).Msg("Normalizer exited with error")
		return out, fmt.Errorf("normalizer failed: %w", err)
	}

	return out, nil
}
