package exiftool

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "exiftool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCommandExecutorCapturesLines(t *testing.T) {
	bin := writeScript(t, "printf 'a\\n\\nb\\n'\necho noise 1>&2\n")
	out, err := commandExecutor{}.Run(context.Background(), bin, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "a\n\nb\n\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestCommandExecutorPassesArgsWithoutShell(t *testing.T) {
	bin := writeScript(t, "for a in \"$@\"; do printf '%s\\n' \"$a\"; done\n")
	out, err := commandExecutor{}.Run(context.Background(), bin, []string{"-XMP:Description=it's \"x\" $HOME"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out, "-XMP:Description=it's \"x\" $HOME\n") {
		t.Fatalf("argument altered: %q", out)
	}
}

func TestCommandExecutorReportsExitStatus(t *testing.T) {
	bin := writeScript(t, "echo partial\nexit 3\n")
	out, err := commandExecutor{}.Run(context.Background(), bin, nil)
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if out != "partial\n\n" {
		t.Fatalf("output = %q", out)
	}
}
