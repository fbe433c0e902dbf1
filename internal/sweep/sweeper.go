package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jkomar/dir-sweeper/internal/fs"
	"github.com/jkomar/dir-sweeper/internal/logging"
)

// Sweeper runs one full sweep over all configured rules.
type Sweeper struct {
	rules   []Rule
	scanner *Scanner
	exec    *Executor
	log     logging.Logger
	dryRun  bool
	now     func() time.Time
}

// Options tune a Sweeper. Now exists so tests can pin the reference
// time.
type Options struct {
	DryRun bool
	Now    func() time.Time
}

func New(rules []Rule, log logging.Logger, filesystem fs.FS, opts Options) *Sweeper {
	if filesystem == nil {
		filesystem = fs.New()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Sweeper{
		rules:   rules,
		scanner: NewScanner(filesystem, log),
		exec:    NewExecutor(filesystem, log),
		log:     log,
		dryRun:  opts.DryRun,
		now:     now,
	}
}

// Run performs one sweep and returns the aggregated report. The
// reference time is captured once here, so every age comparison in the
// run is consistent no matter how long deletion takes. Rules are
// processed sequentially in configuration order; an error on one rule
// lands in that rule's report section and never blocks the rest.
func (s *Sweeper) Run(ctx context.Context) *RunReport {
	report := &RunReport{
		RunID:         uuid.NewString(),
		ReferenceTime: s.now(),
		DryRun:        s.dryRun,
	}

	s.log.Info("sweep %s: starting, %d rules, dryRun=%v", report.RunID, len(s.rules), s.dryRun)

	for _, rule := range s.rules {
		report.Rules = append(report.Rules, s.runRule(ctx, rule, report.ReferenceTime))
	}

	s.log.Info("sweep %s: done, %d directories deleted", report.RunID, report.TotalDeleted())
	return report
}

func (s *Sweeper) runRule(ctx context.Context, rule Rule, referenceTime time.Time) RuleReport {
	rr := RuleReport{Rule: rule.Name, Skipped: map[Reason]int{}}

	candidates, err := s.scanner.Scan(rule.SearchPath, rule.Depth)
	if err != nil {
		s.log.Error("sweep: rule %s: %v", rule.Name, err)
		rr.ScanError = err
		return rr
	}

	deletions, decisions := Plan(rule, candidates, referenceTime)
	rr.Candidates = len(candidates)
	rr.Planned = deletions
	for _, d := range decisions {
		if d.Reason == Eligible {
			rr.Eligible++
		} else {
			rr.Skipped[d.Reason]++
			s.log.Debug("sweep: rule %s: skipping %s (%s)", rule.Name, d.Candidate.Path, d.Reason)
		}
	}

	if s.dryRun {
		s.log.Info("sweep: rule %s: dry run, %d eligible", rule.Name, rr.Eligible)
		return rr
	}

	for _, res := range s.exec.Execute(ctx, deletions) {
		if res.Outcome == Deleted {
			rr.Deleted++
		} else {
			rr.Failures = append(rr.Failures, res)
		}
	}

	return rr
}
