package exiftool

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// maxLineBytes bounds a single output line; -X output carries whole tag
// values on one line.
const maxLineBytes = 4 << 20

// Executor abstracts command execution for testability.
type Executor interface {
	// Run starts binary with args, waits for it to exit and returns
	// everything it printed on standard output.
	Run(ctx context.Context, binary string, args []string) (string, error)
}

type commandExecutor struct{}

// Run captures stdout line by line. Every line, empty ones included, is
// terminated with "\n" and the end of the stream adds one more empty line.
func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stderr = io.Discard
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start command: %w", err)
	}

	output, scanErr := collectLines(stdout)
	if scanErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return output, fmt.Errorf("scan output: %w", scanErr)
	}
	if err := cmd.Wait(); err != nil {
		return output, fmt.Errorf("wait command: %w", err)
	}
	return output, nil
}

func collectLines(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return b.String(), err
	}
	b.WriteByte('\n')
	return b.String(), nil
}
