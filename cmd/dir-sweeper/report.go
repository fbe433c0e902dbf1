package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jkomar/dir-sweeper/internal/sweep"
)

// printReport renders the run report for the operator. Colors are
// dropped when stdout is not a terminal.
func printReport(w io.Writer, report *sweep.RunReport) {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	verb := "deleted"
	if report.DryRun {
		verb = "would delete"
	}

	fmt.Fprintf(w, "sweep %s at %s\n", report.RunID, report.ReferenceTime.Format("2006-01-02 15:04:05"))

	for i := range report.Rules {
		rr := &report.Rules[i]
		fmt.Fprintf(w, "rule %s:\n", rr.Rule)

		if rr.ScanError != nil {
			fmt.Fprintf(w, "  %s %v\n", red("scan error:"), rr.ScanError)
			continue
		}

		fmt.Fprintf(w, "  candidates %d, eligible %d, skipped %d\n",
			rr.Candidates, rr.Eligible, rr.SkippedCount())
		for reason, n := range rr.Skipped {
			fmt.Fprintf(w, "    skipped (%s): %d\n", reason, n)
		}

		if report.DryRun {
			for _, p := range rr.Planned {
				fmt.Fprintf(w, "  %s %s\n", yellow(verb), p)
			}
			continue
		}

		fmt.Fprintf(w, "  %s %d, failed %d\n", green(verb), rr.Deleted, rr.FailedCount())
		for _, f := range rr.Failures {
			fmt.Fprintf(w, "    %s %s (%s): %v\n", red("failed"), f.Path, f.Outcome, f.Err)
		}
	}
}
