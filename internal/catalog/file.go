package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML layout of a user catalog:
//
//	templates:
//	  - {id: d1, text: Make the bed, zone: bedroom, energy: low, frequency: daily}
//	plan:
//	  mon: [w6, w7]
//	  sun: []
type fileSchema struct {
	Templates []domain.TaskTemplate `yaml:"templates"`
	Plan      map[string][]string   `yaml:"plan"`
}

// Load reads and validates a YAML catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (Catalog, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	c := Catalog{Templates: schema.Templates}
	var errs []error
	for dayName, ids := range schema.Plan {
		day, err := domain.ParseDay(dayName)
		if err != nil {
			errs = append(errs, fmt.Errorf("plan: %w", err))
			continue
		}
		c.Plan[day] = append(c.Plan[day], ids...)
	}
	errs = append(errs, Validate(c)...)
	if len(errs) > 0 {
		return Catalog{}, joinErrors("catalog validation failed", errs)
	}
	return c, nil
}

// Validate reports every problem with c: missing or duplicate IDs, invalid
// enums, plan entries that are unknown or not weekly, and weekly templates
// that are not scheduled on exactly one day.
func Validate(c Catalog) []error {
	var errs []error

	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		prefix := fmt.Sprintf("templates[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		}
		seen[t.ID] = true

		if strings.TrimSpace(t.Text) == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", prefix))
		}
		if !t.Zone.Valid() {
			errs = append(errs, fmt.Errorf("%s.zone: invalid value %q", prefix, t.Zone))
		}
		if !t.Energy.Valid() {
			errs = append(errs, fmt.Errorf("%s.energy: invalid value %q", prefix, t.Energy))
		}
		if !t.Frequency.Valid() {
			errs = append(errs, fmt.Errorf("%s.frequency: invalid value %q", prefix, t.Frequency))
		}
	}

	scheduled := make(map[string]int)
	for day, ids := range c.Plan {
		for _, id := range ids {
			t, ok := c.Template(id)
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("plan.%s: unknown template %q", strings.ToLower(domain.DayLabels[day]), id))
			case t.Frequency != domain.FrequencyWeekly:
				errs = append(errs, fmt.Errorf("plan.%s: template %q is %s, not weekly", strings.ToLower(domain.DayLabels[day]), id, t.Frequency))
			}
			scheduled[id]++
		}
	}

	for _, t := range c.ByFrequency(domain.FrequencyWeekly) {
		switch n := scheduled[t.ID]; {
		case n == 0:
			errs = append(errs, fmt.Errorf("weekly template %q is not scheduled on any day", t.ID))
		case n > 1:
			errs = append(errs, fmt.Errorf("weekly template %q is scheduled on %d days", t.ID, n))
		}
	}

	return errs
}

func joinErrors(title string, errs []error) error {
	msg := fmt.Sprintf("%s (%d errors):", title, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
