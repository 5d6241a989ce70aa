package processor

import (
	"context"
)

// Summary tallies the statuses of a batch.
type Summary struct {
	Reports   []Report
	Updated   int
	Unchanged int
	Simulated int
	Skipped   int
	Missing   int
	Failed    int
	// Cancelled is set when the context ended before every target ran.
	Cancelled bool
}

// Total is the number of files that were attempted.
func (s Summary) Total() int {
	return len(s.Reports)
}

// Errors counts files that ended in a failure of any kind.
func (s Summary) Errors() int {
	return s.Missing + s.Failed
}

func (s *Summary) add(report Report) {
	s.Reports = append(s.Reports, report)
	switch report.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusSimulated:
		s.Simulated++
	case StatusSkipped:
		s.Skipped++
	case StatusMissing:
		s.Missing++
	default:
		s.Failed++
	}
}

// ProcessTargets handles each path in order. Per-file errors are already
// logged by ProcessFile and only counted here.
func (p *Processor) ProcessTargets(ctx context.Context, paths []string) Summary {
	var summary Summary
	for _, path := range paths {
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}
		report, _ := p.ProcessFile(ctx, path)
		summary.add(report)
	}
	p.logger.Info("run complete",
		"files", summary.Total(),
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"simulated", summary.Simulated,
		"skipped", summary.Skipped,
		"errors", summary.Errors(),
	)
	return summary
}
