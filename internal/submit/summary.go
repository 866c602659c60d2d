package submit

import (
	"fmt"
	"strings"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/utils"
)

var summaryLabels = map[models.Field]string{
	models.FieldACType:                 "AC type",
	models.FieldCapacity:               "Capacity",
	models.FieldRooms:                  "Rooms",
	models.FieldBuildingType:           "Building",
	models.FieldFloor:                  "Floor",
	models.FieldInstallationDifficulty: "Installation",
	models.FieldUrgency:                "Urgency",
	models.FieldCompanyName:            "Company",
	models.FieldContactName:            "Contact",
	models.FieldPhone:                  "Phone",
	models.FieldEmail:                  "Email",
	models.FieldAddress:                "Address",
	models.FieldContactMethod:          "Follow up by",
	models.FieldPreferredDate:          "Survey date",
	models.FieldPreferredTime:          "Survey time",
	models.FieldNotes:                  "Notes",
}

// SummaryLine is one labelled answer of a quote.
type SummaryLine struct {
	Label string
	Value string
}

// SummaryLines lists the answered fields of q with display labels.
func SummaryLines(q models.Quote) []SummaryLine {
	var lines []SummaryLine
	for _, f := range models.AllFields() {
		if !q.Answers.Answered(f) {
			continue
		}
		lines = append(lines, SummaryLine{
			Label: summaryLabels[f],
			Value: models.Label(f, q.Answers.Value(f)),
		})
	}
	return lines
}

// Summary renders q as plain text for logs and email bodies.
func Summary(q models.Quote, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s\n", q.ID)
	fmt.Fprintf(&b, "Estimated price: %s (labor and materials, excl. tax)\n\n", utils.FormatPrice(currency, q.Price))
	for _, line := range SummaryLines(q) {
		fmt.Fprintf(&b, "%-13s %s\n", line.Label+":", line.Value)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Contact customer by: %s\n", q.FollowUpBy.Format(constants.DateFormat+" "+constants.TimeFormat))
	fmt.Fprintf(&b, "Formal quote due:    %s\n", utils.FormatDate(q.FormalQuoteBy))
	return b.String()
}

// ShortSummary fits a quote into a single SMS.
func ShortSummary(q models.Quote, currency string) string {
	a := q.Answers
	return fmt.Sprintf("New quote %s: %s (%s, %s) %s, follow up by %s before %s",
		shortID(q.ID), a.CompanyName, a.ContactName, a.Phone,
		utils.FormatPrice(currency, q.Price), a.ContactMethod,
		q.FollowUpBy.Format(constants.DateFormat+" "+constants.TimeFormat))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
