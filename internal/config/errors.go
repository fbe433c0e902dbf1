package config

import "fmt"

// Error reports a malformed or incomplete configuration. It is the
// only fatal error class: the process must exit before performing any
// deletion when one is returned.
type Error struct {
	Rule string // empty for file-level problems
	Msg  string
}

func (e *Error) Error() string {
	if e.Rule == "" {
		return "config: " + e.Msg
	}
	return fmt.Sprintf("config: rule %q: %s", e.Rule, e.Msg)
}
