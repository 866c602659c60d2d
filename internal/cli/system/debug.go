package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings data as JSON."`
	DumpSteps    *DebugDumpStepsCmd    `cmd:"" help:"Dump the questionnaire steps and their options as JSON."`
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(ctx, settings)
}

type stepDump struct {
	Step     int         `json:"step"`
	Title    string      `json:"title"`
	Fields   []fieldDump `json:"fields"`
	Required []string    `json:"required"`
}

type fieldDump struct {
	Name    string          `json:"name"`
	Options []models.Option `json:"options,omitempty"`
}

// DebugDumpStepsCmd prints what each step asks and requires. Required fields
// are listed for a customer who booked a site visit.
type DebugDumpStepsCmd struct{}

func (cmd *DebugDumpStepsCmd) Run(ctx *cli.Context) error {
	visit := models.NewAnswerSet()
	visit.ContactMethod = models.ContactAppointment

	var steps []stepDump
	for _, step := range wizard.Steps() {
		d := stepDump{Step: int(step), Title: step.Title()}
		for _, f := range wizard.Fields(step) {
			d.Fields = append(d.Fields, fieldDump{Name: string(f), Options: models.Options(f)})
		}
		for _, f := range wizard.RequiredFields(step, visit) {
			d.Required = append(d.Required, string(f))
		}
		steps = append(steps, d)
	}
	return printJSON(ctx, steps)
}
