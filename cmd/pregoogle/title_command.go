package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pregoogle/internal/config"
	"pregoogle/internal/exiftool"
	"pregoogle/internal/journal"
	"pregoogle/internal/keywords"
	"pregoogle/internal/logging"
	"pregoogle/internal/preflight"
	"pregoogle/internal/processor"
	"pregoogle/internal/runlock"
	"pregoogle/internal/title"
)

// simulateArg is the trailing positional argument that switches on
// simulation in the historical command form.
const simulateArg = "simulate"

type titleOptions struct {
	targets   []string
	exiftool  string
	simulate  bool
	recursive bool
}

func newTitleCommand(ctx *commandContext) *cobra.Command {
	opts := titleOptions{}

	cmd := &cobra.Command{
		Use:   "title [targets...] [simulate]",
		Short: "Compose titles and write them into XMP:Description",
		Long: "Targets are file paths or patterns containing '*'. With --recursive every target\n" +
			"(default: the working directory) is walked for files with a configured extension.",
		RunE: func(cmd *cobra.Command, args []string) error {
			run := opts
			run.targets, run.simulate = splitSimulateArg(args, opts.simulate)
			if len(run.targets) == 0 && !run.recursive {
				return errors.New("no targets given (pass files, a pattern, or --recursive)")
			}
			return runTitle(cmd, ctx, run)
		},
	}

	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Walk targets recursively for files with a configured extension")
	cmd.Flags().BoolVarP(&opts.simulate, "simulate", "n", false, "Compute and log titles without writing")
	cmd.Flags().StringVar(&opts.exiftool, "exiftool", "", "exiftool binary (overrides exiftool.binary)")
	return cmd
}

// parseLegacyArgs reads "filename [exiftool] [simulate]".
func parseLegacyArgs(args []string, base titleOptions) (titleOptions, error) {
	opts := base
	rest, simulate := splitSimulateArg(args, base.simulate)
	opts.simulate = simulate
	switch len(rest) {
	case 0:
	case 1:
		opts.targets = rest
	case 2:
		opts.targets = rest[:1]
		opts.exiftool = rest[1]
	default:
		return titleOptions{}, fmt.Errorf("usage: pregoogle filename [exiftool] [simulate] (got %d arguments)", len(args))
	}
	return opts, nil
}

func splitSimulateArg(args []string, simulate bool) ([]string, bool) {
	if n := len(args); n > 0 && strings.EqualFold(args[n-1], simulateArg) {
		return args[:n-1], true
	}
	return args, simulate
}

func runTitle(cmd *cobra.Command, ctx *commandContext, opts titleOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := applyExifToolOverride(cfg, opts.exiftool); err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	simulate := cfg.Simulate || opts.simulate

	if failed := preflight.Failed(preflight.RunAll(cfg)); len(failed) > 0 {
		parts := make([]string, 0, len(failed))
		for _, result := range failed {
			parts = append(parts, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
		return fmt.Errorf("preflight failed: %s", strings.Join(parts, "; "))
	}

	lock, err := runlock.Acquire(cfg.Paths.LockPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	proc, closeJournal, err := buildProcessor(cfg, logger, simulate, true)
	if err != nil {
		return err
	}
	defer closeJournal()

	targets, err := processor.ExpandTargets(opts.targets, processor.ExpandOptions{
		Recursive:  opts.recursive,
		Extensions: cfg.Files.Extensions,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("no files to process")
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	summary := proc.ProcessTargets(runCtx, targets)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d file(s) in %s: %d updated, %d unchanged, %d simulated, %d skipped, %d failed\n",
		summary.Total(),
		time.Since(started).Round(time.Millisecond),
		summary.Updated,
		summary.Unchanged,
		summary.Simulated,
		summary.Skipped,
		summary.Errors(),
	)
	if summary.Cancelled {
		return context.Canceled
	}
	return nil
}

// buildProcessor wires the exiftool client, keyword lists, composer and,
// when record is set and the journal is enabled, a fresh journal run.
func buildProcessor(cfg *config.Config, logger *slog.Logger, simulate, record bool) (*processor.Processor, func(), error) {
	noop := func() {}

	lists, err := keywords.Load(cfg.Keywords.AcceptedFile, cfg.Keywords.TidyFile)
	if err != nil {
		return nil, noop, fmt.Errorf("load keyword lists: %w", err)
	}
	composer, err := title.NewComposer(lists, cfg.Title.Locale)
	if err != nil {
		return nil, noop, err
	}
	client, err := exiftool.New(cfg.ExifToolBinary(),
		exiftool.WithWriteCharset(cfg.ExifTool.WriteCharset),
		exiftool.WithTimeout(time.Duration(cfg.ExifTool.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, noop, err
	}

	opts := processor.Options{
		Simulate:      simulate,
		LegacyCharset: cfg.Title.LegacyCharset,
		SessionID:     uuid.NewString(),
		Logger:        logger,
	}
	closeFn := noop
	if record && cfg.Journal.Enabled {
		store, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open journal: %w", err)
		}
		run, err := store.BeginRun(context.Background(), simulate)
		if err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("begin journal run: %w", err)
		}
		opts.SessionID = run.SessionID
		opts.Recorder = store
		closeFn = func() {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close journal", logging.Error(err))
			}
		}
	}

	proc, err := processor.New(client, composer, opts)
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	return proc, closeFn, nil
}

func applyExifToolOverride(cfg *config.Config, binary string) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil
	}
	if strings.ContainsAny(binary, `/\`) || strings.HasPrefix(binary, "~") {
		expanded, err := config.ExpandPath(binary)
		if err != nil {
			return fmt.Errorf("resolve exiftool path: %w", err)
		}
		binary = expanded
	}
	cfg.ExifTool.Binary = binary
	return nil
}
