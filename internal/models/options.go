package models

// ACType is the kind of air-conditioning unit to install
type ACType string

// Capacity is the unit's kilowatt rating, kept as an exact enumerated value
type Capacity string

// BuildingType describes the installation site
type BuildingType string

// Floor is the floor band the unit is installed on
type Floor string

// Difficulty is the expected installation difficulty
type Difficulty string

// Urgency is how soon the installation is needed
type Urgency string

// ContactMethod is how the customer wants to be contacted
type ContactMethod string

// TimeSlot is the preferred time of day for an appointment
type TimeSlot string

const (
	ACCeilingCassette ACType = "ceiling-cassette"
	ACCeilingMounted  ACType = "ceiling-mounted"
	ACWallMounted     ACType = "wall-mounted"
	ACFloorStanding   ACType = "floor-standing"
	ACDuctType        ACType = "duct-type"

	Capacity2_5  Capacity = "2.5"
	Capacity4_0  Capacity = "4.0"
	Capacity5_0  Capacity = "5.0"
	Capacity6_0  Capacity = "6.0"
	Capacity8_0  Capacity = "8.0"
	Capacity10_0 Capacity = "10.0"

	BuildingOffice   BuildingType = "office"
	BuildingRetail   BuildingType = "retail"
	BuildingFactory  BuildingType = "factory"
	BuildingHighRise BuildingType = "high-rise"
	BuildingOld      BuildingType = "old-building"
	BuildingOther    BuildingType = "other"

	Floor1To3     Floor = "1-3"
	Floor4To6     Floor = "4-6"
	Floor7Plus    Floor = "7+"
	FloorBasement Floor = "basement"

	DifficultyStandard      Difficulty = "standard"
	DifficultyDifficult     Difficulty = "difficult"
	DifficultyVeryDifficult Difficulty = "very-difficult"

	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"

	ContactPhone       ContactMethod = "phone"
	ContactEmail       ContactMethod = "email"
	ContactAppointment ContactMethod = "appointment"

	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Option is a selectable answer with its display text
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

var (
	acTypeOptions = []Option{
		{string(ACCeilingCassette), "Ceiling cassette", "Recessed in the ceiling, 4-way airflow"},
		{string(ACCeilingMounted), "Ceiling mounted", "Suspended from the ceiling, saves space"},
		{string(ACWallMounted), "Wall mounted", "Mounted on a wall, compact"},
		{string(ACFloorStanding), "Floor standing", "Stands on the floor, powerful"},
		{string(ACDuctType), "Duct type", "Installed above the ceiling, quiet"},
	}
	capacityOptions = []Option{
		{string(Capacity2_5), "2.5 kW", ""},
		{string(Capacity4_0), "4.0 kW", ""},
		{string(Capacity5_0), "5.0 kW", ""},
		{string(Capacity6_0), "6.0 kW", ""},
		{string(Capacity8_0), "8.0 kW", ""},
		{string(Capacity10_0), "10.0 kW", ""},
	}
	buildingOptions = []Option{
		{string(BuildingOffice), "Office building", "A typical office"},
		{string(BuildingRetail), "Retail / commercial", "Shops and stores"},
		{string(BuildingFactory), "Factory / warehouse", "Manufacturing and logistics"},
		{string(BuildingHighRise), "High-rise", "10 floors or more"},
		{string(BuildingOld), "Older building", "Built 20+ years ago"},
		{string(BuildingOther), "Other", "Hospitals, schools and similar"},
	}
	floorOptions = []Option{
		{string(Floor1To3), "Floors 1-3", ""},
		{string(Floor4To6), "Floors 4-6", ""},
		{string(Floor7Plus), "Floor 7 or higher", ""},
		{string(FloorBasement), "Basement", ""},
	}
	difficultyOptions = []Option{
		{string(DifficultyStandard), "Standard", "A typical installation site"},
		{string(DifficultyDifficult), "Somewhat difficult", "Long piping runs, work at height"},
		{string(DifficultyVeryDifficult), "Difficult", "Special work required, hard access"},
	}
	urgencyOptions = []Option{
		{string(UrgencyNormal), "Normal (1-2 months)", ""},
		{string(UrgencyUrgent), "Soon (2-3 weeks)", ""},
		{string(UrgencyEmergency), "Emergency (within 1 week)", ""},
	}
	contactOptions = []Option{
		{string(ContactPhone), "Phone", "We will call you during business hours"},
		{string(ContactEmail), "Email", "We will email you a detailed quote"},
		{string(ContactAppointment), "Site visit", "We will schedule an on-site survey"},
	}
	timeSlotOptions = []Option{
		{string(SlotMorning), "Morning (9:00-12:00)", ""},
		{string(SlotAfternoon), "Afternoon (13:00-17:00)", ""},
		{string(SlotEvening), "Evening (17:00-19:00)", ""},
	}
)

// Options returns the selectable answers for an enumerated field, or nil for
// free-text and numeric fields.
func Options(f Field) []Option {
	var opts []Option
	switch f {
	case FieldACType:
		opts = acTypeOptions
	case FieldCapacity:
		opts = capacityOptions
	case FieldBuildingType:
		opts = buildingOptions
	case FieldFloor:
		opts = floorOptions
	case FieldInstallationDifficulty:
		opts = difficultyOptions
	case FieldUrgency:
		opts = urgencyOptions
	case FieldContactMethod:
		opts = contactOptions
	case FieldPreferredTime:
		opts = timeSlotOptions
	default:
		return nil
	}
	return append([]Option(nil), opts...)
}

// OptionValues returns the raw values accepted by an enumerated field.
func OptionValues(f Field) []string {
	opts := Options(f)
	if opts == nil {
		return nil
	}
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

// Label returns the display label for a field value, falling back to the raw value.
func Label(f Field, value string) string {
	for _, o := range Options(f) {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
