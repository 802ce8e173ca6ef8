package snapshot

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
)

// Validate checks a wire document and returns every problem found.
func Validate(d StateDoc) []error {
	var errs []error

	if d.CurrentWeekStart == "" {
		errs = append(errs, fmt.Errorf("currentWeekStart is required"))
	} else if _, err := domain.ParseWeekKey(d.CurrentWeekStart); err != nil {
		errs = append(errs, fmt.Errorf("currentWeekStart: %w", err))
	}
	if !d.ViewMode.Valid() {
		errs = append(errs, fmt.Errorf("viewMode: invalid value %q", d.ViewMode))
	}

	for _, key := range sortedKeys(d.WeekData) {
		prefix := fmt.Sprintf("weekData[%s]", key)
		if _, err := domain.ParseWeekKey(key); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		week := d.WeekData[key]
		if len(week.Days) != domain.DaysPerWeek {
			errs = append(errs, fmt.Errorf("%s: expected %d days, got %d", prefix, domain.DaysPerWeek, len(week.Days)))
		}
		for i, day := range week.Days {
			errs = append(errs, validateTasks(fmt.Sprintf("%s.days[%d]", prefix, i), day)...)
		}
	}

	for _, key := range sortedKeys(d.MonthlyData) {
		prefix := fmt.Sprintf("monthlyData[%s]", key)
		if _, err := time.Parse("2006-01", key); err != nil || len(key) != 7 {
			errs = append(errs, fmt.Errorf("%s: invalid month key (expected YYYY-MM)", prefix))
		}
		errs = append(errs, validateTasks(prefix, d.MonthlyData[key])...)
	}

	for _, key := range sortedKeys(d.YearlyData) {
		prefix := fmt.Sprintf("yearlyData[%s]", key)
		if _, err := time.Parse("2006", key); err != nil || len(key) != 4 {
			errs = append(errs, fmt.Errorf("%s: invalid year key (expected YYYY)", prefix))
		}
		errs = append(errs, validateTasks(prefix, d.YearlyData[key])...)
	}

	errs = append(errs, validateBank(d.TaskBank)...)
	return errs
}

func validateTasks(prefix string, tasks []domain.TaskInstance) []error {
	var errs []error
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		p := fmt.Sprintf("%s[%d]", prefix, i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", p))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", p, t.ID))
		}
		seen[t.ID] = true

		if !t.Zone.Valid() {
			errs = append(errs, fmt.Errorf("%s.zone: invalid value %q", p, t.Zone))
		}
		if !t.Energy.Valid() {
			errs = append(errs, fmt.Errorf("%s.energy: invalid value %q", p, t.Energy))
		}
		if t.Frequency != "" && !t.Frequency.Valid() {
			errs = append(errs, fmt.Errorf("%s.frequency: invalid value %q", p, t.Frequency))
		}
	}
	return errs
}

func validateBank(bank []domain.TaskTemplate) []error {
	var errs []error
	seen := make(map[string]bool, len(bank))
	for i, t := range bank {
		p := fmt.Sprintf("taskBank[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", p))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", p, t.ID))
		}
		seen[t.ID] = true

		if !t.Zone.Valid() {
			errs = append(errs, fmt.Errorf("%s.zone: invalid value %q", p, t.Zone))
		}
		if !t.Energy.Valid() {
			errs = append(errs, fmt.Errorf("%s.energy: invalid value %q", p, t.Energy))
		}
		if !t.Frequency.Valid() {
			errs = append(errs, fmt.Errorf("%s.frequency: invalid value %q", p, t.Frequency))
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
