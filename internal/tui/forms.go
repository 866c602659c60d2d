package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/validation"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

// StepFormModel holds the raw form values for every question. huh binds to
// these strings and Model.syncForm copies them into the session.
type StepFormModel struct {
	values map[models.Field]*string
}

func newStepFormModel(a models.AnswerSet) *StepFormModel {
	fm := &StepFormModel{values: make(map[models.Field]*string)}
	for _, f := range models.AllFields() {
		v := a.Value(f)
		fm.values[f] = &v
	}
	return fm
}

func (fm *StepFormModel) ptr(f models.Field) *string {
	return fm.values[f]
}

// Value returns the current raw value for f.
func (fm *StepFormModel) Value(f models.Field) string {
	if p, ok := fm.values[f]; ok {
		return *p
	}
	return ""
}

// Set overwrites the raw value for f.
func (fm *StepFormModel) Set(f models.Field, v string) {
	if p, ok := fm.values[f]; ok {
		*p = v
	}
}

func fieldTitle(f models.Field) string {
	switch f {
	case models.FieldACType:
		return "Air conditioner type"
	case models.FieldCapacity:
		return "Capacity"
	case models.FieldRooms:
		return "Number of rooms"
	case models.FieldBuildingType:
		return "Building type"
	case models.FieldFloor:
		return "Installation floor"
	case models.FieldInstallationDifficulty:
		return "Installation conditions"
	case models.FieldUrgency:
		return "Desired timing"
	case models.FieldCompanyName:
		return "Company name"
	case models.FieldContactName:
		return "Contact person"
	case models.FieldPhone:
		return "Phone number"
	case models.FieldEmail:
		return "Email address"
	case models.FieldAddress:
		return "Installation address"
	case models.FieldContactMethod:
		return "Preferred contact method"
	case models.FieldPreferredDate:
		return "Preferred survey date (YYYY-MM-DD)"
	case models.FieldPreferredTime:
		return "Preferred time slot"
	case models.FieldNotes:
		return "Notes"
	}
	return string(f)
}

func selectField(fm *StepFormModel, f models.Field) *huh.Select[string] {
	var opts []huh.Option[string]
	for _, o := range models.Options(f) {
		label := o.Label
		if o.Description != "" {
			label += " - " + o.Description
		}
		opts = append(opts, huh.NewOption(label, o.Value))
	}
	return huh.NewSelect[string]().
		Title(fieldTitle(f)).
		Options(opts...).
		Value(fm.ptr(f))
}

func textField(fm *StepFormModel, f models.Field, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(fieldTitle(f)).
		Value(fm.ptr(f)).
		Validate(validate)
}

// all runs every check in order and returns the first failure.
func all(checks ...func(string) error) func(string) error {
	return func(s string) error {
		for _, check := range checks {
			if err := check(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewStepForm builds the questions for step. check validates a raw answer the
// same way the session will when it is recorded.
func NewStepForm(step wizard.Step, fm *StepFormModel, v *validation.Validator, check func(models.Field, string) error) *huh.Form {
	answer := func(f models.Field) func(string) error {
		return func(s string) error { return check(f, s) }
	}

	var groups []*huh.Group
	switch step {
	case wizard.StepEquipment:
		groups = append(groups, huh.NewGroup(
			selectField(fm, models.FieldACType),
			selectField(fm, models.FieldCapacity),
			textField(fm, models.FieldRooms, answer(models.FieldRooms)).
				Description("Rooms beyond the first add a fixed surcharge"),
		))
	case wizard.StepSite:
		groups = append(groups, huh.NewGroup(
			selectField(fm, models.FieldBuildingType),
			selectField(fm, models.FieldFloor),
			selectField(fm, models.FieldInstallationDifficulty),
			selectField(fm, models.FieldUrgency),
		))
	case wizard.StepCustomer:
		groups = append(groups, huh.NewGroup(
			textField(fm, models.FieldCompanyName, all(validation.Required("company name"), v.MaxLength(validation.MaxTextLen), answer(models.FieldCompanyName))).CharLimit(validation.MaxTextLen),
			textField(fm, models.FieldContactName, all(validation.Required("contact person"), v.MaxLength(validation.MaxTextLen), answer(models.FieldContactName))).CharLimit(validation.MaxTextLen),
			textField(fm, models.FieldPhone, v.Phone).Placeholder("03-1234-5678"),
			textField(fm, models.FieldEmail, v.Email).Placeholder("name@example.com"),
			textField(fm, models.FieldAddress, all(validation.Required("address"), v.MaxLength(validation.MaxTextLen), answer(models.FieldAddress))).CharLimit(validation.MaxTextLen),
		))
	case wizard.StepContact:
		needsVisit := func() bool {
			return fm.Value(models.FieldContactMethod) == string(models.ContactAppointment)
		}
		groups = append(groups,
			huh.NewGroup(selectField(fm, models.FieldContactMethod)),
			huh.NewGroup(
				textField(fm, models.FieldPreferredDate, all(validation.Required("survey date"), answer(models.FieldPreferredDate))),
				selectField(fm, models.FieldPreferredTime),
			).WithHideFunc(func() bool { return !needsVisit() }),
			huh.NewGroup(
				huh.NewText().
					Title(fieldTitle(models.FieldNotes)).
					Description("Anything we should know before the visit").
					Value(fm.ptr(models.FieldNotes)).
					CharLimit(validation.MaxNotesLen).
					Validate(all(v.MaxLength(validation.MaxNotesLen), answer(models.FieldNotes))),
			),
		)
	}

	return huh.NewForm(groups...).
		WithShowHelp(false).
		WithTheme(huh.ThemeDracula())
}
