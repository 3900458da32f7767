package wizard

import (
	"testing"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStepsFor(t *testing.T) {
	assert.Equal(t, []models.Step{models.StepIncident, models.StepEvidence, models.StepReview}, StepsFor(models.KindCrime))
	assert.Equal(t, []models.Step{models.StepIncident, models.StepReview}, StepsFor(models.KindIncident))
}

func TestPrevious_ClampedAtFirstStep(t *testing.T) {
	w := New(models.KindCrime, models.StepIncident)

	w = w.Previous()

	assert.Equal(t, models.StepIncident, w.Step())
	assert.Equal(t, 33, w.Progress())
}

func TestNext_ClampedAtLastStep(t *testing.T) {
	w := New(models.KindIncident, models.StepReview)

	w = w.Next()

	assert.Equal(t, models.StepReview, w.Step())
	assert.Equal(t, 100, w.Progress())
}

func TestNext_WalksTheCrimeSequence(t *testing.T) {
	w := New(models.KindCrime, models.StepIncident)

	w = w.Next()
	assert.Equal(t, models.StepEvidence, w.Step())
	assert.Equal(t, 67, w.Progress())

	w = w.Next()
	assert.Equal(t, models.StepReview, w.Step())
	assert.True(t, w.AtReview())
}

func TestProgress_StaysWithinBounds(t *testing.T) {
	for _, kind := range []models.ReportKind{models.KindCrime, models.KindIncident} {
		w := New(kind, models.StepIncident)
		// Walk far past both ends; progress must never leave [1, 100].
		for i := 0; i < 10; i++ {
			w = w.Previous()
			assert.GreaterOrEqual(t, w.Progress(), 1)
			assert.LessOrEqual(t, w.Progress(), 100)
		}
		for i := 0; i < 10; i++ {
			w = w.Next()
			assert.GreaterOrEqual(t, w.Progress(), 1)
			assert.LessOrEqual(t, w.Progress(), 100)
		}
	}
}

func TestJumpToReview(t *testing.T) {
	w := New(models.KindCrime, models.StepIncident).JumpToReview()

	assert.True(t, w.AtReview())
	assert.Equal(t, 100, w.Progress())
}

func TestSetKind_ClampsStepIntoNewSequence(t *testing.T) {
	// Evidence is the second crime step; incidents have no evidence step, so
	// switching kinds there must land on a step that exists.
	w := New(models.KindCrime, models.StepEvidence)

	w = w.SetKind(models.KindIncident)

	assert.Equal(t, models.KindIncident, w.Kind())
	assert.Equal(t, models.StepReview, w.Step())
}

func TestNew_UnknownStepResolvesToFirst(t *testing.T) {
	w := New(models.KindIncident, models.StepEvidence)

	assert.Equal(t, models.StepIncident, w.Step())
}
