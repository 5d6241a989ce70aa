package processor

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"pregoogle/internal/logging"
)

// ExpandOptions controls how command-line targets become file paths.
type ExpandOptions struct {
	// Recursive walks every target (default ".") and keeps files whose
	// extension is in Extensions.
	Recursive  bool
	Extensions []string
	Logger     *slog.Logger
}

// ExpandTargets resolves targets into an ordered, de-duplicated file list.
// Without Recursive a target containing '*' is a glob and anything else is
// taken as a file path; existence is checked later by ProcessFile.
func ExpandTargets(targets []string, opts ExpandOptions) ([]string, error) {
	logger := logging.NewComponentLogger(opts.Logger, "targets")
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	if opts.Recursive {
		roots := targets
		if len(roots) == 0 {
			roots = []string{"."}
		}
		exts := extensionSet(opts.Extensions)
		for _, root := range roots {
			expanded, err := expandGlob(root, logger)
			if err != nil {
				return nil, err
			}
			for _, dir := range expanded {
				if err := walkRoot(dir, exts, logger, add); err != nil {
					return nil, err
				}
			}
		}
		return files, nil
	}

	for _, target := range targets {
		expanded, err := expandGlob(target, logger)
		if err != nil {
			return nil, err
		}
		for _, path := range expanded {
			add(path)
		}
	}
	return files, nil
}

func expandGlob(target string, logger *slog.Logger) ([]string, error) {
	if !strings.Contains(target, "*") {
		return []string{target}, nil
	}
	matches, err := filepath.Glob(target)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", target, err)
	}
	if len(matches) == 0 {
		logging.WarnWithContext(logger, "no files match pattern", "empty_glob",
			logging.String("pattern", target),
			logging.String(logging.FieldErrorHint, "check the pattern and working directory"),
		)
	}
	return matches, nil
}

func walkRoot(root string, exts map[string]struct{}, logger *slog.Logger, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.WarnWithContext(logger, "skipping unreadable path", "walk",
				logging.String(logging.FieldFile, path),
				logging.Error(err),
			)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
			add(path)
		}
		return nil
	})
}

func extensionSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = []string{".jpg", ".jpeg"}
	}
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
