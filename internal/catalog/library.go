package catalog

import "github.com/alexanderramin/choreplan/internal/domain"

// Suggestions filters a task bank down to what fits the given view: the
// weekly view offers daily and weekly tasks, the monthly and yearly views
// offer their own frequency.
func Suggestions(templates []domain.TaskTemplate, mode domain.ViewMode) []domain.TaskTemplate {
	return filter(templates, func(t domain.TaskTemplate) bool {
		switch mode {
		case domain.ViewWeekly:
			return t.Frequency == domain.FrequencyDaily || t.Frequency == domain.FrequencyWeekly
		case domain.ViewMonthly:
			return t.Frequency == domain.FrequencyMonthly
		case domain.ViewYearly:
			return t.Frequency == domain.FrequencyYearly
		}
		return false
	})
}

// ZoneGroup is one zone's slice of a task bank.
type ZoneGroup struct {
	Zone      domain.Zone
	Templates []domain.TaskTemplate
}

// ByZone groups templates in domain.Zones order, skipping empty zones.
// Templates with an unknown zone are collected last under their own zone.
func ByZone(templates []domain.TaskTemplate) []ZoneGroup {
	var groups []ZoneGroup
	for _, z := range domain.Zones {
		zone := z
		if ts := filter(templates, func(t domain.TaskTemplate) bool { return t.Zone == zone }); len(ts) > 0 {
			groups = append(groups, ZoneGroup{Zone: zone, Templates: ts})
		}
	}
	if other := filter(templates, func(t domain.TaskTemplate) bool { return !t.Zone.Valid() }); len(other) > 0 {
		groups = append(groups, ZoneGroup{Zone: other[0].Zone, Templates: other})
	}
	return groups
}

// Find looks a template up by ID in an arbitrary bank.
func Find(templates []domain.TaskTemplate, id string) (domain.TaskTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.TaskTemplate{}, false
}
