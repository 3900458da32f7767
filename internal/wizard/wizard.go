// Package wizard tracks the step sequence of the report form: which steps
// apply for a report kind, the current position, and the derived progress.
package wizard

import (
	"math"

	"github.com/mavrin/citizen-report-portal/internal/models"
)

var (
	crimeSteps    = []models.Step{models.StepIncident, models.StepEvidence, models.StepReview}
	incidentSteps = []models.Step{models.StepIncident, models.StepReview}
)

// StepsFor returns the step sequence for a report kind. Incident reports
// have no evidence step.
func StepsFor(kind models.ReportKind) []models.Step {
	if kind == models.KindIncident {
		return incidentSteps
	}
	return crimeSteps
}

// Wizard is the navigation state of the report form. The zero value is a
// crime wizard at the first step.
type Wizard struct {
	kind models.ReportKind
	idx  int
}

// New returns a wizard for the given kind positioned at the given step. An
// unknown step resolves to the first one.
func New(kind models.ReportKind, step models.Step) Wizard {
	w := Wizard{kind: kind}
	for i, s := range StepsFor(kind) {
		if s == step {
			w.idx = i
			break
		}
	}
	return w
}

// Kind returns the report kind the wizard is configured for.
func (w Wizard) Kind() models.ReportKind { return w.kind }

// Step returns the current step.
func (w Wizard) Step() models.Step {
	return StepsFor(w.kind)[w.idx]
}

// AtReview reports whether the wizard is on the final review step.
func (w Wizard) AtReview() bool {
	return w.Step() == models.StepReview
}

// Next advances one step, clamped at the last step.
func (w Wizard) Next() Wizard {
	if w.idx < len(StepsFor(w.kind))-1 {
		w.idx++
	}
	return w
}

// Previous moves one step back, clamped at the first step.
func (w Wizard) Previous() Wizard {
	if w.idx > 0 {
		w.idx--
	}
	return w
}

// JumpToReview moves directly to the review step.
func (w Wizard) JumpToReview() Wizard {
	w.idx = len(StepsFor(w.kind)) - 1
	return w
}

// SetKind switches the report kind, clamping the position into the new step
// sequence so the wizard never points at a step that no longer exists
// (switching crime to incident while on the evidence step lands on review).
func (w Wizard) SetKind(kind models.ReportKind) Wizard {
	w.kind = kind
	if max := len(StepsFor(kind)) - 1; w.idx > max {
		w.idx = max
	}
	return w
}

// Progress returns the completion percentage, always within [1, 100].
func (w Wizard) Progress() int {
	steps := StepsFor(w.kind)
	return int(math.Round(100 * float64(w.idx+1) / float64(len(steps))))
}
