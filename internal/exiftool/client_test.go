package exiftool_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pregoogle/internal/exiftool"
)

type stubExecutor struct {
	output string
	err    error
	calls  int
	binary string
	args   [][]string
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	s.calls++
	s.binary = binary
	s.args = append(s.args, append([]string(nil), args...))
	return s.output, s.err
}

func newClient(t *testing.T, exec exiftool.Executor) *exiftool.Client {
	t.Helper()
	client, err := exiftool.New("exiftool", exiftool.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := exiftool.New("  "); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestNewRejectsUnknownWriteCharset(t *testing.T) {
	if _, err := exiftool.New("exiftool", exiftool.WithWriteCharset("klingon")); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestExtractPassesArguments(t *testing.T) {
	exec := &stubExecutor{output: "<rdf:RDF/>\n\n"}
	client := newClient(t, exec)

	out, err := client.Extract(context.Background(), "/photos/a.jpg")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if out != "<rdf:RDF/>\n\n" {
		t.Fatalf("unexpected output %q", out)
	}
	want := []string{"/photos/a.jpg", "-charset", "iptc=utf8", "-ex", "-X", "-f"}
	if !reflect.DeepEqual(exec.args[0], want) {
		t.Fatalf("args = %q, want %q", exec.args[0], want)
	}
	if exec.binary != "exiftool" {
		t.Fatalf("binary = %q", exec.binary)
	}
}

func TestExtractWrapsExecutorError(t *testing.T) {
	client := newClient(t, &stubExecutor{err: errors.New("boom")})
	if _, err := client.Extract(context.Background(), "a.jpg"); !errors.Is(err, exiftool.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestWriteTitleUpdate(t *testing.T) {
	exec := &stubExecutor{output: "    1 image files updated\n\n"}
	client := newClient(t, exec)

	result, err := client.WriteTitle(context.Background(), "a.jpg", "Blåbær * Tr├©ndelag", false)
	if err != nil {
		t.Fatalf("WriteTitle returned error: %v", err)
	}
	if result.Outcome != exiftool.Update {
		t.Fatalf("outcome = %v, want update", result.Outcome)
	}
	want := []string{
		"a.jpg", "-overwrite_original_in_place", "-P", "-charset", "cp1252", "-ex",
		"-XMP:Description=Bl\xe5b\xe6r * Tr\xf8ndelag",
	}
	if !reflect.DeepEqual(exec.args[0], want) {
		t.Fatalf("args = %q, want %q", exec.args[0], want)
	}
}

func TestWriteTitleNoChange(t *testing.T) {
	exec := &stubExecutor{output: "    0 image files updated\n    1 image files unchanged\n\n"}
	result, err := newClient(t, exec).WriteTitle(context.Background(), "a.jpg", "Tittel", false)
	if err != nil {
		t.Fatalf("WriteTitle returned error: %v", err)
	}
	if result.Outcome != exiftool.NoChange {
		t.Fatalf("outcome = %v, want no_change", result.Outcome)
	}
}

func TestWriteTitleUnexpected(t *testing.T) {
	exec := &stubExecutor{output: "Warning: something odd\n    1 image files updated\n"}
	result, err := newClient(t, exec).WriteTitle(context.Background(), "a.jpg", "Tittel", false)
	if !errors.Is(err, exiftool.ErrUnexpectedOutput) {
		t.Fatalf("expected ErrUnexpectedOutput, got %v", err)
	}
	if result.Outcome != exiftool.Unexpected {
		t.Fatalf("outcome = %v, want unexpected", result.Outcome)
	}
	if result.Output != exec.output {
		t.Fatalf("raw output not returned: %q", result.Output)
	}
}

func TestWriteTitleExecutorErrorIsUnexpected(t *testing.T) {
	exec := &stubExecutor{output: "    1 image files updated\n\n", err: errors.New("exit status 1")}
	result, err := newClient(t, exec).WriteTitle(context.Background(), "a.jpg", "Tittel", false)
	if !errors.Is(err, exiftool.ErrUnexpectedOutput) || !errors.Is(err, exiftool.ErrExternalTool) {
		t.Fatalf("expected both sentinels, got %v", err)
	}
	if result.Outcome != exiftool.Unexpected {
		t.Fatalf("outcome = %v, want unexpected", result.Outcome)
	}
}

func TestWriteTitleSimulateSkipsExecutor(t *testing.T) {
	exec := &stubExecutor{}
	result, err := newClient(t, exec).WriteTitle(context.Background(), "a.jpg", "Tittel", true)
	if err != nil {
		t.Fatalf("WriteTitle returned error: %v", err)
	}
	if result.Outcome != exiftool.Simulate {
		t.Fatalf("outcome = %v, want simulate", result.Outcome)
	}
	if exec.calls != 0 {
		t.Fatalf("executor called %d times in simulate mode", exec.calls)
	}
}

func TestWriteTitleRejectsEmptyTitle(t *testing.T) {
	exec := &stubExecutor{}
	_, err := newClient(t, exec).WriteTitle(context.Background(), "a.jpg", "  ", false)
	if !errors.Is(err, exiftool.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if exec.calls != 0 {
		t.Fatal("executor should not run for an empty title")
	}
}

func TestPatternClassifier(t *testing.T) {
	c := exiftool.DefaultClassifier()
	cases := map[string]exiftool.Outcome{
		"    1 image files updated\n\n":                            exiftool.Update,
		"    0 image files updated\n    1 image files unchanged\n\n": exiftool.NoChange,
		"    1 image files updated\n":                              exiftool.Unexpected,
		"":                                                         exiftool.Unexpected,
		"Error: File not found - a.jpg\n\n":                        exiftool.Unexpected,
	}
	for output, want := range cases {
		if got := c.Classify(output); got != want {
			t.Errorf("Classify(%q) = %v, want %v", output, got, want)
		}
	}
}

func TestCustomClassifier(t *testing.T) {
	custom := exiftool.PatternClassifier{UpdatedSuffix: "1 Bilddateien aktualisiert\n\n"}
	exec := &stubExecutor{output: "    1 Bilddateien aktualisiert\n\n"}
	client, err := exiftool.New("exiftool", exiftool.WithExecutor(exec), exiftool.WithClassifier(custom))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result, err := client.WriteTitle(context.Background(), "a.jpg", "x", false)
	if err != nil || result.Outcome != exiftool.Update {
		t.Fatalf("got %v, %v", result.Outcome, err)
	}
}

func TestWriteArgsProtectsDashPrefixedFile(t *testing.T) {
	args := exiftool.WriteArgs("-odd.jpg", "t", "cp1252")
	if args[0] != "./-odd.jpg" {
		t.Fatalf("file arg = %q", args[0])
	}
}

func TestOneLine(t *testing.T) {
	if got := exiftool.OneLine("a\r\nb\nc\r"); got != "abc" {
		t.Fatalf("OneLine = %q", got)
	}
}

func TestWriteTitleReplacesRunesOutsideCharset(t *testing.T) {
	exec := &stubExecutor{output: "    1 image files updated\n\n"}
	client := newClient(t, exec)

	if _, err := client.WriteTitle(context.Background(), "a.jpg", "Łódź * 15. mars 2010", false); err != nil {
		t.Fatalf("WriteTitle returned error: %v", err)
	}
	got := exec.args[0][len(exec.args[0])-1]
	if got != "-XMP:Description=\x1a\xf3d\x1a * 15. mars 2010" {
		t.Fatalf("unexpected title argument %q", got)
	}
}

func TestWriteCharsetAliasUsesExifToolName(t *testing.T) {
	cases := []struct {
		label   string
		charset string
		title   string
	}{
		{"latin1", "cp1252", "-XMP:Description=S\xf8r"},
		{"utf-8", "UTF8", "-XMP:Description=Sør"},
	}
	for _, tc := range cases {
		exec := &stubExecutor{output: "    1 image files updated\n\n"}
		client, err := exiftool.New("exiftool", exiftool.WithExecutor(exec), exiftool.WithWriteCharset(tc.label))
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", tc.label, err)
		}
		if _, err := client.WriteTitle(context.Background(), "a.jpg", "Sør", false); err != nil {
			t.Fatalf("WriteTitle returned error: %v", err)
		}
		args := exec.args[0]
		if args[4] != tc.charset {
			t.Fatalf("%s: -charset %q, want %q", tc.label, args[4], tc.charset)
		}
		if args[len(args)-1] != tc.title {
			t.Fatalf("%s: title argument %q, want %q", tc.label, args[len(args)-1], tc.title)
		}
	}
}

func TestNewRejectsCharsetExifToolCannotWrite(t *testing.T) {
	if _, err := exiftool.New("exiftool", exiftool.WithWriteCharset("iso-8859-2")); err == nil {
		t.Fatal("expected error for charset without an exiftool name")
	}
}
