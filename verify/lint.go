package verify

import (
	"fmt"

	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// IssueType categorizes lint findings.
type IssueType string

const (
	// IssueShape marks an operand sequence of the wrong length.
	IssueShape IssueType = "SHAPE"
	// IssueStimulus marks a schedule that violates the documented
	// stimulus convention.
	IssueStimulus IssueType = "STIMULUS"
)

// Issue is one lint finding, tied to the cycle it concerns.
type Issue struct {
	Type    IssueType
	Cycle   int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] cycle %d: %s", i.Type, i.Cycle, i.Message)
}

// Lint checks a stimulus schedule before it is run. It never rejects a
// schedule outright: outputs sampled while reset is asserted are defined
// behavior (the combinational terms stay live), so a short reset run is
// suspicious but legal.
func Lint(shape systolic.Shape, vectors []systolic.Vector) []Issue {
	var issues []Issue

	for i, v := range vectors {
		if err := systolic.CheckVector(shape, v); err != nil {
			issues = append(issues, Issue{
				Type:    IssueShape,
				Cycle:   i,
				Message: err.Error(),
			})
		}
	}

	if len(vectors) == 0 {
		return issues
	}

	resetRun := 0
	for _, v := range vectors {
		if !v.Reset {
			break
		}
		resetRun++
	}

	if resetRun < 2 {
		issues = append(issues, Issue{
			Type:  IssueStimulus,
			Cycle: 0,
			Message: fmt.Sprintf(
				"reset held for %d ticks from cold start, convention wants >= 2",
				resetRun),
		})
	}

	if resetRun == len(vectors) {
		issues = append(issues, Issue{
			Type:    IssueStimulus,
			Cycle:   len(vectors) - 1,
			Message: "schedule never deasserts reset",
		})
	}

	return issues
}
