// Package catalog holds the curated task bank and the generators that turn
// it into fresh weeks, months and years of task instances.
package catalog

import (
	"github.com/alexanderramin/choreplan/internal/domain"
)

// DistributionPlan assigns weekly template IDs to weekdays, Monday first.
type DistributionPlan [domain.DaysPerWeek][]string

// Catalog is a task bank plus the plan that spreads its weekly tasks over
// the week.
type Catalog struct {
	Templates []domain.TaskTemplate
	Plan      DistributionPlan
}

// Template returns the template with the given id.
func (c Catalog) Template(id string) (domain.TaskTemplate, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.TaskTemplate{}, false
}

// ByFrequency returns the templates of one frequency in catalog order.
func (c Catalog) ByFrequency(f domain.Frequency) []domain.TaskTemplate {
	return filter(c.Templates, func(t domain.TaskTemplate) bool { return t.Frequency == f })
}

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() Catalog {
	templates := make([]domain.TaskTemplate, len(defaultTemplates))
	copy(templates, defaultTemplates)
	var plan DistributionPlan
	for i, ids := range defaultPlan {
		plan[i] = append([]string(nil), ids...)
	}
	return Catalog{Templates: templates, Plan: plan}
}

var defaultTemplates = []domain.TaskTemplate{
	{ID: "d1", Text: "Make the bed", Zone: domain.ZoneBedroom, Energy: domain.EnergyLow, Frequency: domain.FrequencyDaily, Why: "Provides immediate visual order and sets a productive tone."},
	{ID: "d2", Text: "Wipe kitchen counters", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow, Frequency: domain.FrequencyDaily, Why: "Prevents food-borne bacteria and pest attraction."},
	{ID: "d4", Text: "Wash dirty dishes", Zone: domain.ZoneKitchen, Energy: domain.EnergyMedium, Frequency: domain.FrequencyDaily, Why: "Eliminates odors and prevents crusty food buildup."},
	{ID: "d5", Text: "Sweep high-traffic floors", Zone: domain.ZoneDeep, Energy: domain.EnergyMedium, Frequency: domain.FrequencyDaily, Why: "Prevents grit from scratching floor finishes."},

	{ID: "w1", Text: "Launder bath mats & towels", Zone: domain.ZoneBathroom, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Fabrics in humid zones capture bacteria and mildew rapidly."},
	{ID: "w2", Text: "Deep clean toilets & showers", Zone: domain.ZoneBathroom, Energy: domain.EnergyHigh, Frequency: domain.FrequencyWeekly, Why: "Stops hard water scale and mold before they become permanent."},
	{ID: "w3", Text: "Dust all surfaces", Zone: domain.ZoneLiving, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Protects air quality and electronics from overheating."},
	{ID: "w4", Text: "Vacuum & mop all floors", Zone: domain.ZoneDeep, Energy: domain.EnergyHigh, Frequency: domain.FrequencyWeekly, Why: "Removes deep-seated allergens and dander."},
	{ID: "w5", Text: "Change bed sheets", Zone: domain.ZoneBedroom, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Essential for respiratory health and skin hygiene."},
	{ID: "w6", Text: "Flush kitchen drain (boiling water)", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow, Frequency: domain.FrequencyWeekly, Why: "Melts grease buildup to prevent expensive plumbing clogs."},
	{ID: "w7", Text: "Wipe microwave & toaster", Zone: domain.ZoneKitchen, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Prevents baked-on grease and fire hazards."},
	{ID: "w13", Text: "Fridge purge (expired items)", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow, Frequency: domain.FrequencyWeekly, Why: "Prevents odors and maintains food safety."},
	{ID: "w8", Text: "Clean mirrors & glass", Zone: domain.ZoneLiving, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Removes fingerprints and maximizes natural light."},
	{ID: "w9", Text: "Sort mail & pay bills", Zone: domain.ZoneLiving, Energy: domain.EnergyMedium, Frequency: domain.FrequencyWeekly, Why: "Reduces mental load and paper clutter."},

	{ID: "m11", Text: "Test smoke & CO alarms", Zone: domain.ZoneDeep, Energy: domain.EnergyLow, Frequency: domain.FrequencyMonthly, Why: "Life-saving priority to ensure devices are active."},
	{ID: "m12", Text: "Change/clean HVAC filters", Zone: domain.ZoneDeep, Energy: domain.EnergyMedium, Frequency: domain.FrequencyMonthly, Why: "Prevents blower motor failures and improves air."},
	{ID: "m6", Text: "Wash vent hood filters", Zone: domain.ZoneKitchen, Energy: domain.EnergyMedium, Frequency: domain.FrequencyMonthly, Why: "Prevents grease fires and keeps kitchen air fresh."},
	{ID: "m13", Text: "Test GFCI outlets", Zone: domain.ZoneDeep, Energy: domain.EnergyLow, Frequency: domain.FrequencyMonthly, Why: "Ensures shock-protection circuits are functional."},

	{ID: "y2", Text: "Clean gutters & downspouts", Zone: domain.ZoneDeep, Energy: domain.EnergyHigh, Frequency: domain.FrequencyYearly, Why: "Critical to prevent foundation water damage."},
	{ID: "y11", Text: "Clean dryer exhaust vent", Zone: domain.ZoneDeep, Energy: domain.EnergyHigh, Frequency: domain.FrequencyYearly, Why: "Lint buildup is a leading cause of house fires."},
	{ID: "y12", Text: "Flush water heater", Zone: domain.ZoneDeep, Energy: domain.EnergyHigh, Frequency: domain.FrequencyYearly, Why: "Removes corrosive sediment and improves efficiency."},
}

var defaultPlan = DistributionPlan{
	{"w6", "w7", "w13"}, // kitchen
	{"w1", "w2"},        // bathroom
	{"w3", "w8"},        // dust & glass
	{"w5"},              // bedroom
	{"w4"},              // floors
	{"w9"},              // admin
	{},                  // rest
}

// DayTheme is the focus label shown for a weekday.
type DayTheme struct {
	Label string
	Zone  domain.Zone
}

// DayThemes follows the default plan: one focus area per weekday.
var DayThemes = [domain.DaysPerWeek]DayTheme{
	{Label: "Kitchen Day", Zone: domain.ZoneKitchen},
	{Label: "Bathroom Day", Zone: domain.ZoneBathroom},
	{Label: "Dust & Shine", Zone: domain.ZoneLiving},
	{Label: "Bedroom Day", Zone: domain.ZoneBedroom},
	{Label: "Floor Day", Zone: domain.ZoneDeep},
	{Label: "Admin Day"},
	{Label: "Rest & Recharge"},
}

func filter(templates []domain.TaskTemplate, keep func(domain.TaskTemplate) bool) []domain.TaskTemplate {
	out := make([]domain.TaskTemplate, 0, len(templates))
	for _, t := range templates {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
