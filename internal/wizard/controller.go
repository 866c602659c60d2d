package wizard

import "github.com/julianstephens/quotewiz/internal/models"

// Controller tracks the active step and whether the final result is showing.
// The zero value is not usable; use NewController.
type Controller struct {
	current     Step
	resultShown bool
}

// NewController starts at the first step.
func NewController() Controller {
	return Controller{current: StepEquipment}
}

// Current returns the active step. It stays at StepContact once the result shows.
func (c *Controller) Current() Step {
	return c.current
}

// ResultShown reports whether the last step has been confirmed.
func (c *Controller) ResultShown() bool {
	return c.resultShown
}

// CanAdvance reports whether Advance would move forward.
func (c *Controller) CanAdvance(a models.AnswerSet) bool {
	return !c.resultShown && IsStepValid(c.current, a)
}

// Advance moves to the next step, or to the result from the last step, when
// the current step is valid. It reports whether anything changed.
func (c *Controller) Advance(a models.AnswerSet) bool {
	if !c.CanAdvance(a) {
		return false
	}
	if c.current == StepContact {
		c.resultShown = true
		return true
	}
	c.current++
	return true
}

// Retreat moves back one step. It is a no-op on the first step and leaves
// the result flag alone.
func (c *Controller) Retreat() bool {
	if c.current <= StepEquipment {
		return false
	}
	c.current--
	return true
}

// ProgressFraction is the current step over the number of steps.
func (c *Controller) ProgressFraction() float64 {
	return float64(c.current) / float64(StepCount)
}
