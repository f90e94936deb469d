package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Mismatch records one output cell that diverged from the reference.
type Mismatch struct {
	Cycle int
	Cell  int
	Want  uint16
	Got   uint16
}

// Report is the result of checking a collected run against the reference
// model.
type Report struct {
	Shape      systolic.Shape
	Cycles     int
	Issues     []Issue
	Mismatches []Mismatch
	ReplayErr  error
}

// Passed reports whether the run matched the reference with no shape
// issues. Stimulus-convention findings are warnings, not failures.
func (r *Report) Passed() bool {
	if r.ReplayErr != nil || len(r.Mismatches) > 0 {
		return false
	}
	for _, issue := range r.Issues {
		if issue.Type == IssueShape {
			return false
		}
	}
	return true
}

// Compare lints the schedule, replays it on the reference model, and
// compares the collected outputs cycle by cycle.
func Compare(
	shape systolic.Shape,
	vectors []systolic.Vector,
	got [][]uint16,
) *Report {
	report := &Report{
		Shape:  shape,
		Cycles: len(vectors),
		Issues: Lint(shape, vectors),
	}

	want, err := Reference(shape, vectors)
	if err != nil {
		report.ReplayErr = err
		return report
	}

	cycles := len(want)
	if len(got) < cycles {
		cycles = len(got)
	}
	if len(got) != len(want) {
		report.Issues = append(report.Issues, Issue{
			Type:  IssueStimulus,
			Cycle: cycles,
			Message: fmt.Sprintf(
				"collected %d cycles of outputs, stimulus has %d",
				len(got), len(want)),
		})
	}

	for cycle := 0; cycle < cycles; cycle++ {
		for cell := range want[cycle] {
			if got[cycle][cell] != want[cycle][cell] {
				report.Mismatches = append(report.Mismatches, Mismatch{
					Cycle: cycle,
					Cell:  cell,
					Want:  want[cycle][cell],
					Got:   got[cycle][cell],
				})
			}
		}
	}

	return report
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "ENGINE RUN VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nShape %dx%dx%d, %d stimulus cycles\n",
		r.Shape.Rows, r.Shape.Cols, r.Shape.Depth, r.Cycles)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		fmt.Fprintf(w, "%d lint issues:\n", len(r.Issues))
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	}

	switch {
	case r.ReplayErr != nil:
		fmt.Fprintf(w, "Reference replay failed: %v\n", r.ReplayErr)
	case len(r.Mismatches) == 0:
		fmt.Fprintln(w, "Outputs match the reference model")
	default:
		fmt.Fprintf(w, "%d output mismatches:\n", len(r.Mismatches))
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "  cycle %d cell %d: want %d, got %d\n",
				m.Cycle, m.Cell, m.Want, m.Got)
		}
	}

	fmt.Fprintln(w, separator)
	if r.Passed() {
		fmt.Fprintln(w, "PASS")
	} else {
		fmt.Fprintln(w, "FAIL")
	}
}
