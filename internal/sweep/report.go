package sweep

import "time"

// RuleReport aggregates decisions and execution outcomes for one rule.
type RuleReport struct {
	Rule       string
	ScanError  error
	Candidates int
	Eligible   int
	Deleted    int
	Skipped    map[Reason]int
	Failures   []ExecResult // Failed and AlreadyGone outcomes
	Planned    []string     // planned deletions, in scan order
}

// FailedCount counts planned deletions that did not result in a
// removed directory.
func (r *RuleReport) FailedCount() int {
	return len(r.Failures)
}

// SkippedCount counts candidates rejected by the planner.
func (r *RuleReport) SkippedCount() int {
	n := 0
	for _, c := range r.Skipped {
		n += c
	}
	return n
}

// RunReport is the aggregate result of one sweep. It is recomputed
// fresh every run and never persisted.
type RunReport struct {
	RunID         string
	ReferenceTime time.Time
	DryRun        bool
	Rules         []RuleReport
}

// AllRulesFailed reports whether every configured rule failed to scan.
// This is the only partial-failure shape that makes the whole
// invocation count as failed.
func (r *RunReport) AllRulesFailed() bool {
	if len(r.Rules) == 0 {
		return false
	}
	for i := range r.Rules {
		if r.Rules[i].ScanError == nil {
			return false
		}
	}
	return true
}

// TotalDeleted sums deletions across all rules.
func (r *RunReport) TotalDeleted() int {
	n := 0
	for i := range r.Rules {
		n += r.Rules[i].Deleted
	}
	return n
}
