package planner

import (
	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/domain"
)

// bucket addresses one granularity of the state. Mutators are written once
// against this capability set; each ViewMode supplies its own.
type bucket struct {
	mode domain.ViewMode
	// flat buckets have no day subdivision; the day index is ignored.
	flat bool
	key  func(weekKey string) string
	get  func(s *domain.PlannerState, key string, day int) []domain.TaskInstance
	// put replaces one sequence, copying every map level it touches.
	put func(s *domain.PlannerState, key string, day int, tasks []domain.TaskInstance)
	// fill replaces the whole bucket at key with generated defaults.
	fill func(s *domain.PlannerState, key string, g *catalog.Generator)
}

var weekly = bucket{
	mode: domain.ViewWeekly,
	key:  func(k string) string { return k },
	get: func(s *domain.PlannerState, key string, day int) []domain.TaskInstance {
		return s.WeekData[key].Day(day)
	},
	put: func(s *domain.PlannerState, key string, day int, tasks []domain.TaskInstance) {
		s.WeekData = withEntry(s.WeekData, key, s.WeekData[key].WithDay(day, tasks))
	},
	fill: func(s *domain.PlannerState, key string, g *catalog.Generator) {
		s.WeekData = withEntry(s.WeekData, key, g.Week())
	},
}

var monthly = flatBucket(domain.ViewMonthly, domain.MonthKey,
	func(s *domain.PlannerState) *map[string][]domain.TaskInstance { return &s.MonthlyData },
	(*catalog.Generator).Month)

var yearly = flatBucket(domain.ViewYearly, domain.YearKey,
	func(s *domain.PlannerState) *map[string][]domain.TaskInstance { return &s.YearlyData },
	(*catalog.Generator).Year)

func flatBucket(
	mode domain.ViewMode,
	key func(string) string,
	field func(*domain.PlannerState) *map[string][]domain.TaskInstance,
	generate func(*catalog.Generator) []domain.TaskInstance,
) bucket {
	return bucket{
		mode: mode,
		flat: true,
		key:  key,
		get: func(s *domain.PlannerState, key string, _ int) []domain.TaskInstance {
			return (*field(s))[key]
		},
		put: func(s *domain.PlannerState, key string, _ int, tasks []domain.TaskInstance) {
			m := field(s)
			*m = withEntry(*m, key, tasks)
		},
		fill: func(s *domain.PlannerState, key string, g *catalog.Generator) {
			m := field(s)
			*m = withEntry(*m, key, generate(g))
		},
	}
}

func bucketFor(mode domain.ViewMode) (bucket, bool) {
	switch mode {
	case domain.ViewWeekly:
		return weekly, true
	case domain.ViewMonthly:
		return monthly, true
	case domain.ViewYearly:
		return yearly, true
	}
	return bucket{}, false
}

// withEntry returns a copy of m with k set to v. Other entries are shared.
func withEntry[V any](m map[string]V, k string, v V) map[string]V {
	out := make(map[string]V, len(m)+1)
	for key, val := range m {
		out[key] = val
	}
	out[k] = v
	return out
}
