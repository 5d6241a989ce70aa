package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const stubPhotoXML = `<?xml version='1.0' encoding='UTF-8'?>
<rdf:RDF xmlns:rdf='http://www.w3.org/1999/02/22-rdf-syntax-ns#'>
<rdf:Description rdf:about='a.jpg'
  xmlns:IPTC='http://ns.exiftool.org/IPTC/IPTC/1.0/'
  xmlns:ExifIFD='http://ns.exiftool.org/EXIF/ExifIFD/1.0/'>
 <IPTC:Caption-Abstract>Portrait</IPTC:Caption-Abstract>
 <IPTC:City>Oslo</IPTC:City>
 <ExifIFD:CreateDate>2010:03:15 12:00:00</ExifIFD:CreateDate>
</rdf:Description>
</rdf:RDF>`

type cliTestEnv struct {
	baseDir    string
	configPath string
	exiftool   string
	photo      string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub exiftool requires a POSIX shell")
	}

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("PREGOOGLE_EXIFTOOL", "")

	exiftool := filepath.Join(base, "bin", "exiftool")
	script := "#!/bin/sh\n" +
		"for arg in \"$@\"; do\n" +
		"  if [ \"$arg\" = \"-X\" ]; then\n" +
		"    cat <<'XML'\n" + stubPhotoXML + "\nXML\n" +
		"    exit 0\n" +
		"  fi\n" +
		"done\n" +
		"printf '    1 image files updated\\n'\n"
	writeFile(t, exiftool, script, 0o755)

	photo := filepath.Join(base, "photos", "a.jpg")
	writeFile(t, photo, "jpeg", 0o644)

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[exiftool]
binary = %q

[paths]
log_dir = %q
lock_path = %q

[journal]
enabled = true
path = %q

[logging]
format = "json"
level = "error"
`,
		exiftool,
		filepath.Join(base, "logs"),
		filepath.Join(base, "state", "pregoogle.lock"),
		filepath.Join(base, "state", "journal.db"),
	)
	writeFile(t, configPath, content, 0o644)

	return &cliTestEnv{baseDir: base, configPath: configPath, exiftool: exiftool, photo: photo}
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
