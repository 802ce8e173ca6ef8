package domain

type Zone string

const (
	ZoneKitchen  Zone = "kitchen"
	ZoneLiving   Zone = "living"
	ZoneBathroom Zone = "bathroom"
	ZoneBedroom  Zone = "bedroom"
	ZoneDeep     Zone = "deep"
)

// Zones lists every zone in display order.
var Zones = []Zone{ZoneKitchen, ZoneLiving, ZoneBathroom, ZoneBedroom, ZoneDeep}

var zoneNames = map[Zone]string{
	ZoneKitchen:  "Kitchen",
	ZoneLiving:   "Living",
	ZoneBathroom: "Bathroom",
	ZoneBedroom:  "Bedroom",
	ZoneDeep:     "Deep Clean",
}

func (z Zone) Valid() bool {
	_, ok := zoneNames[z]
	return ok
}

// Name returns the human label for the zone, e.g. "Deep Clean".
func (z Zone) Name() string {
	if n, ok := zoneNames[z]; ok {
		return n
	}
	return string(z)
}

type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

var Energies = []Energy{EnergyLow, EnergyMedium, EnergyHigh}

func (e Energy) Valid() bool {
	return e == EnergyLow || e == EnergyMedium || e == EnergyHigh
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// ViewMode selects which bucket map the planner addresses.
type ViewMode string

const (
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
	ViewYearly  ViewMode = "yearly"
)

var ViewModes = []ViewMode{ViewWeekly, ViewMonthly, ViewYearly}

func (m ViewMode) Valid() bool {
	return m == ViewWeekly || m == ViewMonthly || m == ViewYearly
}

// ParseViewMode accepts the canonical names plus their first letter.
func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "weekly", "week", "w":
		return ViewWeekly, true
	case "monthly", "month", "m":
		return ViewMonthly, true
	case "yearly", "year", "y":
		return ViewYearly, true
	}
	return "", false
}
