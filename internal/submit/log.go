package submit

import (
	"context"

	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/utils"
)

// LogSubmitter writes the quote to the application log.
type LogSubmitter struct {
	currency string
}

func NewLogSubmitter(currency string) *LogSubmitter {
	return &LogSubmitter{currency: currency}
}

func (l *LogSubmitter) Name() string {
	return "log"
}

func (l *LogSubmitter) Submit(_ context.Context, q models.Quote) error {
	a := q.Answers
	logger.Info("Quote submitted",
		"id", q.ID,
		"price", utils.FormatPrice(l.currency, q.Price),
		"company", a.CompanyName,
		"contact", a.ContactName,
		"phone", a.Phone,
		"email", a.Email,
		"acType", a.ACType,
		"capacity", a.Capacity,
		"rooms", a.Rooms,
		"contactMethod", a.ContactMethod,
		"followUpBy", q.FollowUpBy,
	)
	return nil
}
