// Package sweep implements the stale-directory sweep: scanning search
// roots for candidates, planning deletions, and executing the plan.
package sweep

import (
	"path/filepath"
	"time"

	"github.com/jkomar/dir-sweeper/internal/config"
	"github.com/jkomar/dir-sweeper/internal/pattern"
)

// DefaultScanDepth keeps the common repo/branch layout working out of
// the box: candidates are the directories one level below each
// immediate subdirectory of the search root.
const DefaultScanDepth = 2

// Rule is one compiled cleanup unit. Built once from configuration at
// startup and immutable for the run.
type Rule struct {
	Name       string
	SearchPath string
	Patterns   pattern.RuleSet
	Keep       time.Duration
	Depth      int
}

// BuildRules validates and compiles the configured rules. Any problem
// is a config.Error, which aborts the process before any deletion.
func BuildRules(cfgs []config.RuleConfig) ([]Rule, error) {
	rules := make([]Rule, 0, len(cfgs))
	seen := make(map[string]bool, len(cfgs))

	for _, rc := range cfgs {
		if rc.Name == "" {
			return nil, &config.Error{Msg: "rule without a name"}
		}
		if seen[rc.Name] {
			return nil, &config.Error{Rule: rc.Name, Msg: "duplicate rule name"}
		}
		seen[rc.Name] = true

		if rc.SearchPath == "" {
			return nil, &config.Error{Rule: rc.Name, Msg: "searchPath is required"}
		}
		if !filepath.IsAbs(rc.SearchPath) {
			return nil, &config.Error{Rule: rc.Name, Msg: "searchPath must be absolute"}
		}
		if rc.KeepDurationDays < 0 {
			return nil, &config.Error{Rule: rc.Name, Msg: "keepDurationDays must be >= 0"}
		}

		depth := rc.ScanDepth
		if depth == 0 {
			depth = DefaultScanDepth
		}
		if depth < 1 {
			return nil, &config.Error{Rule: rc.Name, Msg: "scanDepth must be >= 1"}
		}

		ps, err := pattern.CompileSet(rc.MatchPatterns, rc.ExcludePatterns)
		if err != nil {
			return nil, &config.Error{Rule: rc.Name, Msg: err.Error()}
		}

		rules = append(rules, Rule{
			Name:       rc.Name,
			SearchPath: filepath.Clean(rc.SearchPath),
			Patterns:   ps,
			Keep:       time.Duration(rc.KeepDurationDays) * 24 * time.Hour,
			Depth:      depth,
		})
	}

	return rules, nil
}
