package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pregoogle/internal/charset"
	"pregoogle/internal/exiftool"
	"pregoogle/internal/journal"
	"pregoogle/internal/logging"
	"pregoogle/internal/metadata"
	"pregoogle/internal/preflight"
	"pregoogle/internal/title"
)

// ErrMissingInput reports a target that does not exist or is not a file.
var ErrMissingInput = errors.New("missing input file")

// Tool is the subset of the exiftool client the pipeline needs.
type Tool interface {
	Extract(ctx context.Context, path string) (string, error)
	WriteTitle(ctx context.Context, path, title string, simulate bool) (exiftool.WriteResult, error)
}

// Recorder stores per-file outcomes.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Status is the final state of one file.
type Status string

const (
	StatusUpdated    Status = "update"
	StatusUnchanged  Status = "no_change"
	StatusSimulated  Status = "simulate"
	StatusSkipped    Status = "skipped"
	StatusMissing    Status = "missing"
	StatusFailed     Status = "failed"
	StatusUnexpected Status = "unexpected"
)

// Report describes what happened to one file.
type Report struct {
	Path   string
	Title  string
	Status Status
	// Output is the raw exiftool output for write outcomes.
	Output string
}

// Options configures a Processor.
type Options struct {
	Simulate      bool
	LegacyCharset string
	SessionID     string
	Recorder      Recorder
	Logger        *slog.Logger
	// CheckWritable defaults to preflight.CheckWritable.
	CheckWritable func(path string) error
}

// Processor computes and writes titles for photos.
type Processor struct {
	tool          Tool
	composer      *title.Composer
	simulate      bool
	legacy        string
	sessionID     string
	recorder      Recorder
	logger        *slog.Logger
	checkWritable func(string) error
}

// New builds a Processor.
func New(tool Tool, composer *title.Composer, opts Options) (*Processor, error) {
	if tool == nil {
		return nil, errors.New("exiftool client required")
	}
	if composer == nil {
		return nil, errors.New("title composer required")
	}
	check := opts.CheckWritable
	if check == nil {
		check = preflight.CheckWritable
	}
	return &Processor{
		tool:          tool,
		composer:      composer,
		simulate:      opts.Simulate,
		legacy:        opts.LegacyCharset,
		sessionID:     opts.SessionID,
		recorder:      opts.Recorder,
		logger:        logging.NewComponentLogger(opts.Logger, "processor"),
		checkWritable: check,
	}, nil
}

// Inspect extracts metadata from path and composes its title without
// writing anything.
func (p *Processor) Inspect(ctx context.Context, path string) (metadata.Fields, string, error) {
	if err := requireFile(path); err != nil {
		return metadata.Fields{}, "", err
	}
	raw, err := p.tool.Extract(ctx, path)
	if err != nil {
		return metadata.Fields{}, "", fmt.Errorf("%w: %w", metadata.ErrMetadataLoad, err)
	}
	reader, err := metadata.Parse(raw, metadata.WithLegacyCharset(p.legacy))
	if err != nil {
		return metadata.Fields{}, "", err
	}
	fields := reader.Fields()
	composed, err := p.composer.Compose(fields)
	if err != nil {
		return fields, "", err
	}
	return fields, charset.Repair(composed), nil
}

// ProcessFile runs the full pipeline for one file. The returned error is
// non-nil for every status except updated, unchanged, simulated and skipped.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Report, error) {
	ctx = logging.WithSession(logging.WithFile(ctx, path), p.sessionID)
	logger := logging.WithContext(ctx, p.logger)
	report := Report{Path: path}

	_, newTitle, err := p.Inspect(ctx, path)
	switch {
	case errors.Is(err, ErrMissingInput):
		report.Status = StatusMissing
		logging.WarnWithContext(logger, "file is missing, cancelled", "missing_input",
			logging.String(logging.FieldErrorHint, "check the file path"),
			logging.Error(err),
		)
		return p.finish(ctx, logger, report, err)
	case errors.Is(err, title.ErrDateParse):
		report.Status = StatusFailed
		logging.ErrorWithContext(logger, "failed to parse creation date", "date_parse",
			logging.String(logging.FieldErrorHint, "fix ExifIFD:CreateDate or clear it"),
			logging.Error(err),
		)
		return p.finish(ctx, logger, report, err)
	case err != nil:
		report.Status = StatusFailed
		logging.ErrorWithContext(logger, "failed to load image data", "metadata_load",
			logging.String(logging.FieldErrorHint, "run exiftool -X on the file to inspect its output"),
			logging.Error(err),
		)
		return p.finish(ctx, logger, report, err)
	}

	report.Title = newTitle
	if strings.TrimSpace(newTitle) == "" {
		report.Status = StatusSkipped
		logger.Info("image not changed, title empty")
		return p.finish(ctx, logger, report, nil)
	}

	if !p.simulate {
		if err := p.checkWritable(path); err != nil {
			report.Status = StatusFailed
			logging.ErrorWithContext(logger, "image is not writable", "permission",
				logging.String(logging.FieldErrorHint, "check file permissions"),
				logging.Error(err),
			)
			return p.finish(ctx, logger, report, err)
		}
	}

	result, err := p.tool.WriteTitle(ctx, path, newTitle, p.simulate)
	report.Output = result.Output
	titleAttr := logging.String(logging.FieldTitle, newTitle)
	switch {
	case err != nil && !errors.Is(err, exiftool.ErrUnexpectedOutput):
		report.Status = StatusFailed
		logging.ErrorWithContext(logger, "image failed to set title", "write",
			titleAttr,
			logging.Error(err),
		)
	case err == nil && result.Outcome == exiftool.Update:
		report.Status = StatusUpdated
		logger.Info("image new title", titleAttr, logging.String(logging.FieldOutcome, result.Outcome.String()))
	case err == nil && result.Outcome == exiftool.NoChange:
		report.Status = StatusUnchanged
		logger.Info("image no changes", titleAttr, logging.String(logging.FieldOutcome, result.Outcome.String()))
	case err == nil && result.Outcome == exiftool.Simulate:
		report.Status = StatusSimulated
		logger.Info("simulate: image new title", titleAttr, logging.String(logging.FieldOutcome, result.Outcome.String()))
	default:
		report.Status = StatusUnexpected
		if err == nil {
			err = fmt.Errorf("%w: %s", exiftool.ErrUnexpectedOutput, path)
		}
		logging.ErrorWithContext(logger, "image failed to set title", "unexpected_output",
			titleAttr,
			logging.String("output", exiftool.OneLine(result.Output)),
			logging.Error(err),
		)
	}
	return p.finish(ctx, logger, report, err)
}

func (p *Processor) finish(ctx context.Context, logger *slog.Logger, report Report, err error) (Report, error) {
	if p.recorder == nil || p.sessionID == "" {
		return report, err
	}
	entry := journal.Entry{
		SessionID: p.sessionID,
		Path:      report.Path,
		Title:     report.Title,
		Outcome:   string(report.Status),
	}
	switch {
	case err != nil:
		entry.Detail = err.Error()
	case report.Output != "":
		entry.Detail = exiftool.OneLine(report.Output)
	}
	if recErr := p.recorder.Record(context.WithoutCancel(ctx), entry); recErr != nil {
		logger.Warn("failed to record outcome", logging.Error(recErr))
	}
	return report, err
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMissingInput, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingInput, path)
	}
	return nil
}
