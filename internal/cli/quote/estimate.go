package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/tui/components/price"
	"github.com/julianstephens/quotewiz/internal/utils"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

// EstimateCmd answers the questionnaire from flags. Without --submit any
// subset of answers is accepted and priced.
type EstimateCmd struct {
	ACType     string `name:"ac-type" help:"ceiling-cassette, ceiling-mounted, wall-mounted, floor-standing or duct-type."`
	Capacity   string `help:"Capacity in kW: 2.5, 4.0, 5.0, 6.0, 8.0 or 10.0."`
	Rooms      int    `help:"Number of rooms." default:"1"`
	Building   string `help:"office, retail, factory, high-rise, old-building or other."`
	Floor      string `help:"1-3, 4-6, 7+ or basement."`
	Difficulty string `help:"standard, difficult or very-difficult."`
	Urgency    string `help:"normal, urgent or emergency."`

	Company string `help:"Company name."`
	Contact string `help:"Contact person."`
	Phone   string `help:"Phone number."`
	Email   string `help:"Email address."`
	Address string `help:"Installation address."`

	ContactMethod string `name:"contact-method" help:"phone, email or appointment."`
	Date          string `help:"Preferred survey date (YYYY-MM-DD), for appointments."`
	Time          string `help:"Preferred survey time: morning, afternoon or evening."`
	Notes         string `help:"Free-form notes."`

	Breakdown bool `help:"Show every pricing step."`
	JSON      bool `name:"json" help:"Print JSON instead of text."`
	Submit    bool `help:"Require a complete questionnaire and send it to the configured channels."`
}

func (c *EstimateCmd) values() map[models.Field]string {
	return map[models.Field]string{
		models.FieldACType:                 c.ACType,
		models.FieldCapacity:               c.Capacity,
		models.FieldRooms:                  strconv.Itoa(c.Rooms),
		models.FieldBuildingType:           c.Building,
		models.FieldFloor:                  c.Floor,
		models.FieldInstallationDifficulty: c.Difficulty,
		models.FieldUrgency:                c.Urgency,
		models.FieldCompanyName:            c.Company,
		models.FieldContactName:            c.Contact,
		models.FieldPhone:                  c.Phone,
		models.FieldEmail:                  c.Email,
		models.FieldAddress:                c.Address,
		models.FieldContactMethod:          c.ContactMethod,
		models.FieldPreferredDate:          c.Date,
		models.FieldPreferredTime:          c.Time,
		models.FieldNotes:                  c.Notes,
	}
}

func (c *EstimateCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.SettingsOrDefaults()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	session, err := ctx.NewSession(settings)
	if err != nil {
		return err
	}

	values := c.values()
	var errs []error
	for _, f := range models.AllFields() {
		raw := values[f]
		if raw == "" {
			continue
		}
		if err := session.SetField(f, raw); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.Submit {
		return c.submit(ctx, session, settings)
	}
	return c.printEstimate(ctx, settings, session.Breakdown())
}

func (c *EstimateCmd) printEstimate(ctx *cli.Context, settings models.Settings, b models.PriceBreakdown) error {
	if c.JSON {
		return printJSON(ctx, b)
	}
	if b.Total == 0 {
		ctx.Println("No estimate yet: choose at least an AC type.")
		return nil
	}
	ctx.Printf("Estimated price: %s (labor and materials, excl. tax)\n", utils.FormatPrice(settings.CurrencySymbol, b.Total))
	if c.Breakdown {
		ctx.Println()
		ctx.Println(price.Breakdown(settings.CurrencySymbol, b))
	}
	return nil
}

// submit walks every step of the wizard and sends the finished quote.
func (c *EstimateCmd) submit(ctx *cli.Context, session *wizard.Session, settings models.Settings) error {
	for range wizard.StepCount {
		if !session.Advance() {
			return fmt.Errorf("step %d (%s) is incomplete, missing: %s",
				int(session.Step()), session.Step(), cli.FieldNames(session.MissingFields()))
		}
	}

	q, err := session.Quote(settings)
	if err != nil {
		return err
	}
	submitter, err := ctx.Submitter(settings)
	if err != nil {
		return fmt.Errorf("cannot submit quote: %w", err)
	}
	if err := submitter.Submit(context.Background(), q); err != nil {
		return fmt.Errorf("failed to submit quote %s: %w", q.ID, err)
	}

	if c.JSON {
		return printJSON(ctx, q)
	}
	ctx.Print(submit.Summary(q, settings.CurrencySymbol))
	if c.Breakdown {
		ctx.Println()
		ctx.Println(price.Breakdown(settings.CurrencySymbol, q.Breakdown))
	}
	ctx.Println()
	ctx.Println(submit.ConfirmationMessage(settings))
	return nil
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
