package sweep

import "time"

// Reason classifies the planner's decision for one candidate.
type Reason int

const (
	Eligible Reason = iota
	NameExcluded
	NameNotMatched
	TooYoung
)

func (r Reason) String() string {
	switch r {
	case Eligible:
		return "eligible"
	case NameExcluded:
		return "name-excluded"
	case NameNotMatched:
		return "name-not-matched"
	case TooYoung:
		return "too-young"
	default:
		return "unknown"
	}
}

// Decision is the planner's outcome for one candidate.
type Decision struct {
	Candidate Candidate
	Reason    Reason
}

// Plan evaluates candidates against a rule and returns the paths to
// delete plus the full decision list. The name filter runs first, so a
// rejected name never consults the timestamp; exclude takes precedence
// over match. Deletions keep scan order. Nothing on disk is touched.
func Plan(rule Rule, candidates []Candidate, referenceTime time.Time) (deletions []string, decisions []Decision) {
	for _, c := range candidates {
		d := Decision{Candidate: c, Reason: Eligible}
		switch {
		case rule.Patterns.Excluded(c.Name):
			d.Reason = NameExcluded
		case !rule.Patterns.Matched(c.Name):
			d.Reason = NameNotMatched
		case !IsStale(referenceTime, c.ModTime, rule.Keep):
			d.Reason = TooYoung
		default:
			deletions = append(deletions, c.Path)
		}
		decisions = append(decisions, d)
	}
	return deletions, decisions
}
