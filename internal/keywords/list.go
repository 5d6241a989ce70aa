package keywords

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed accepted.txt
var defaultAccepted string

//go:embed tidy.txt
var defaultTidy string

// parseLines splits newline-delimited text, dropping empty lines. Lines are
// kept verbatim otherwise, since tidy suffixes may carry leading spaces.
func parseLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func readList(path string, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read keyword list %s: %w", path, err)
	}
	return string(data), nil
}

// Lists bundles the two keyword lists a title composer needs.
type Lists struct {
	Accepted *AcceptedList
	Tidy     *TidyList
}

// Load reads both lists. Empty paths select the embedded defaults.
func Load(acceptedPath, tidyPath string) (Lists, error) {
	acceptedText, err := readList(acceptedPath, defaultAccepted)
	if err != nil {
		return Lists{}, err
	}
	tidyText, err := readList(tidyPath, defaultTidy)
	if err != nil {
		return Lists{}, err
	}
	return Lists{
		Accepted: ParseAccepted(acceptedText),
		Tidy:     ParseTidy(tidyText),
	}, nil
}
