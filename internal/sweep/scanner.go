package sweep

import (
	"fmt"
	"strings"
	"time"

	"github.com/jkomar/dir-sweeper/internal/fs"
	"github.com/jkomar/dir-sweeper/internal/logging"
)

// Candidate is a directory discovered under a rule's search path. Name
// is the leaf segment used for pattern testing. A zero ModTime means
// the modification time could not be read.
type Candidate struct {
	Path    string
	Name    string
	ModTime time.Time
}

// Scanner enumerates deletion candidates below a search root.
type Scanner struct {
	fs  fs.FS
	log logging.Logger
}

func NewScanner(filesystem fs.FS, log logging.Logger) *Scanner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Scanner{fs: filesystem, log: log}
}

// Scan returns the directories exactly depth levels below root, in
// directory-listing order. Non-directory entries and dot directories
// are skipped silently. An unreadable root is an error for the whole
// rule; an unreadable subtree further down only loses that subtree.
func (s *Scanner) Scan(root string, depth int) ([]Candidate, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	var out []Candidate
	for _, e := range entries {
		if !e.IsDir || strings.HasPrefix(e.Name, ".") {
			continue
		}

		if depth <= 1 {
			out = append(out, Candidate{Path: e.Path, Name: e.Name, ModTime: e.MTime})
			continue
		}

		sub, err := s.Scan(e.Path, depth-1)
		if err != nil {
			s.log.Warn("scan: skipping %s: %v", e.Path, err)
			continue
		}
		out = append(out, sub...)
	}

	return out, nil
}
