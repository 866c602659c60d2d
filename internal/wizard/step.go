package wizard

import (
	"fmt"

	"github.com/julianstephens/quotewiz/internal/models"
)

// Step is one page of the questionnaire. Steps are visited in order.
type Step int

const (
	StepEquipment Step = iota + 1
	StepSite
	StepCustomer
	StepContact
)

// StepCount is the number of question pages.
const StepCount = 4

var steps = []Step{StepEquipment, StepSite, StepCustomer, StepContact}

// Steps returns every step in visiting order.
func Steps() []Step {
	return append([]Step(nil), steps...)
}

// Valid reports whether s is one of the four question pages.
func (s Step) Valid() bool {
	return s >= StepEquipment && s <= StepContact
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return s.Title()
}

// Title is the short heading shown in the step tabs.
func (s Step) Title() string {
	switch s {
	case StepEquipment:
		return "Equipment"
	case StepSite:
		return "Site"
	case StepCustomer:
		return "Customer"
	case StepContact:
		return "Contact"
	}
	return ""
}

// Description is the longer prompt shown above the step's questions.
func (s Step) Description() string {
	switch s {
	case StepEquipment:
		return "Choose the air conditioner type, capacity and number of rooms"
	case StepSite:
		return "Tell us about the building and installation conditions"
	case StepCustomer:
		return "Who should we prepare the quote for?"
	case StepContact:
		return "How would you like us to follow up?"
	}
	return ""
}

// requirements lists, per step, the fields that must be answered before
// leaving it. Every step in steps has an entry.
var requirements = map[Step]func(models.AnswerSet) []models.Field{
	StepEquipment: func(models.AnswerSet) []models.Field {
		return []models.Field{models.FieldACType, models.FieldCapacity, models.FieldRooms}
	},
	StepSite: func(models.AnswerSet) []models.Field {
		return []models.Field{models.FieldBuildingType, models.FieldFloor, models.FieldInstallationDifficulty}
	},
	StepCustomer: func(models.AnswerSet) []models.Field {
		return []models.Field{
			models.FieldCompanyName, models.FieldContactName,
			models.FieldPhone, models.FieldEmail, models.FieldAddress,
		}
	},
	StepContact: func(a models.AnswerSet) []models.Field {
		if a.NeedsAppointment() {
			return []models.Field{models.FieldContactMethod, models.FieldPreferredDate, models.FieldPreferredTime}
		}
		return []models.Field{models.FieldContactMethod}
	},
}

// RequiredFields returns the fields step needs given the current answers.
// Unknown steps require nothing and are never valid.
func RequiredFields(step Step, a models.AnswerSet) []models.Field {
	req, ok := requirements[step]
	if !ok {
		return nil
	}
	return req(a)
}

// MissingFields returns the required fields of step that are still unanswered.
func MissingFields(step Step, a models.AnswerSet) []models.Field {
	var missing []models.Field
	for _, f := range RequiredFields(step, a) {
		if !a.Answered(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsStepValid reports whether every required field of step is answered.
func IsStepValid(step Step, a models.AnswerSet) bool {
	if _, ok := requirements[step]; !ok {
		return false
	}
	return len(MissingFields(step, a)) == 0
}

// fields lists every question shown on a step, required or not.
var fields = map[Step][]models.Field{
	StepEquipment: {models.FieldACType, models.FieldCapacity, models.FieldRooms},
	StepSite: {
		models.FieldBuildingType, models.FieldFloor,
		models.FieldInstallationDifficulty, models.FieldUrgency,
	},
	StepCustomer: {
		models.FieldCompanyName, models.FieldContactName,
		models.FieldPhone, models.FieldEmail, models.FieldAddress,
	},
	StepContact: {
		models.FieldContactMethod, models.FieldPreferredDate,
		models.FieldPreferredTime, models.FieldNotes,
	},
}

// Fields returns the questions asked on step in display order.
func Fields(step Step) []models.Field {
	return append([]models.Field(nil), fields[step]...)
}
