package models

import (
	"strconv"
	"time"

	"github.com/julianstephens/quotewiz/internal/constants"
)

// Field names a single answer in the questionnaire
type Field string

const (
	FieldACType                 Field = "acType"
	FieldCapacity               Field = "capacity"
	FieldRooms                  Field = "rooms"
	FieldBuildingType           Field = "buildingType"
	FieldFloor                  Field = "floor"
	FieldInstallationDifficulty Field = "installationDifficulty"
	FieldUrgency                Field = "urgency"
	FieldCompanyName            Field = "companyName"
	FieldContactName            Field = "contactName"
	FieldPhone                  Field = "phone"
	FieldEmail                  Field = "email"
	FieldAddress                Field = "address"
	FieldContactMethod          Field = "contactMethod"
	FieldPreferredDate          Field = "preferredDate"
	FieldPreferredTime          Field = "preferredTime"
	FieldNotes                  Field = "notes"
)

var allFields = []Field{
	FieldACType, FieldCapacity, FieldRooms,
	FieldBuildingType, FieldFloor, FieldInstallationDifficulty, FieldUrgency,
	FieldCompanyName, FieldContactName, FieldPhone, FieldEmail, FieldAddress,
	FieldContactMethod, FieldPreferredDate, FieldPreferredTime, FieldNotes,
}

// AllFields returns every answer field in questionnaire order.
func AllFields() []Field {
	return append([]Field(nil), allFields...)
}

// AnswerSet holds everything collected during one pass through the questionnaire.
// The zero value of every field except Rooms means "unanswered".
type AnswerSet struct {
	// Equipment
	ACType   ACType   `json:"acType"`
	Capacity Capacity `json:"capacity"`
	Rooms    int      `json:"rooms"`

	// Site
	BuildingType           BuildingType `json:"buildingType"`
	Floor                  Floor        `json:"floor"`
	InstallationDifficulty Difficulty   `json:"installationDifficulty"`
	Urgency                Urgency      `json:"urgency"`

	// Customer
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`

	// Contact preference
	ContactMethod ContactMethod `json:"contactMethod"`
	PreferredDate time.Time     `json:"preferredDate,omitzero"`
	PreferredTime TimeSlot      `json:"preferredTime"`
	Notes         string        `json:"notes"`
}

// NewAnswerSet returns an empty answer set with the single room default.
func NewAnswerSet() AnswerSet {
	return AnswerSet{Rooms: 1}
}

// Answered reports whether a field holds a non-empty answer.
func (a AnswerSet) Answered(f Field) bool {
	if f == FieldRooms {
		return a.Rooms >= 1
	}
	if f == FieldPreferredDate {
		return !a.PreferredDate.IsZero()
	}
	return a.Value(f) != ""
}

// NeedsAppointment reports whether the customer asked for a site visit.
func (a AnswerSet) NeedsAppointment() bool {
	return a.ContactMethod == ContactAppointment
}

// Value returns the raw string form of a field, "" when unanswered.
func (a AnswerSet) Value(f Field) string {
	switch f {
	case FieldACType:
		return string(a.ACType)
	case FieldCapacity:
		return string(a.Capacity)
	case FieldRooms:
		return strconv.Itoa(a.Rooms)
	case FieldBuildingType:
		return string(a.BuildingType)
	case FieldFloor:
		return string(a.Floor)
	case FieldInstallationDifficulty:
		return string(a.InstallationDifficulty)
	case FieldUrgency:
		return string(a.Urgency)
	case FieldCompanyName:
		return a.CompanyName
	case FieldContactName:
		return a.ContactName
	case FieldPhone:
		return a.Phone
	case FieldEmail:
		return a.Email
	case FieldAddress:
		return a.Address
	case FieldContactMethod:
		return string(a.ContactMethod)
	case FieldPreferredDate:
		if a.PreferredDate.IsZero() {
			return ""
		}
		return a.PreferredDate.Format(constants.DateFormat)
	case FieldPreferredTime:
		return string(a.PreferredTime)
	case FieldNotes:
		return a.Notes
	}
	return ""
}
