package catalog

import (
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/google/uuid"
)

// IDSource produces instance IDs. Implementations must not repeat an ID
// within a single bucket.
type IDSource interface {
	NewID() string
}

// UUIDSource issues random v4 UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

// Generator materializes default buckets from a catalog.
type Generator struct {
	catalog Catalog
	ids     IDSource
}

// NewGenerator returns a Generator over c. A nil ids falls back to UUIDs.
func NewGenerator(c Catalog, ids IDSource) *Generator {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Generator{catalog: c, ids: ids}
}

// Catalog returns the catalog the generator draws from.
func (g *Generator) Catalog() Catalog { return g.catalog }

// Week builds a distributed week: every daily template as an essential on
// all seven days, followed by that day's planned weekly focus tasks.
// Plan entries that do not name a template are skipped.
func (g *Generator) Week() domain.WeekBucket {
	daily := g.catalog.ByFrequency(domain.FrequencyDaily)

	var week domain.WeekBucket
	for day := range week.Days {
		tasks := make([]domain.TaskInstance, 0, len(daily)+len(g.catalog.Plan[day]))
		for _, t := range daily {
			tasks = append(tasks, t.Instantiate(g.ids.NewID(), true))
		}
		for _, id := range g.catalog.Plan[day] {
			if t, ok := g.catalog.Template(id); ok {
				tasks = append(tasks, t.Instantiate(g.ids.NewID(), false))
			}
		}
		week.Days[day] = tasks
	}
	return week
}

// Month clones every monthly template once.
func (g *Generator) Month() []domain.TaskInstance {
	return g.instantiateAll(domain.FrequencyMonthly)
}

// Year clones every yearly template once.
func (g *Generator) Year() []domain.TaskInstance {
	return g.instantiateAll(domain.FrequencyYearly)
}

func (g *Generator) instantiateAll(f domain.Frequency) []domain.TaskInstance {
	templates := g.catalog.ByFrequency(f)
	out := make([]domain.TaskInstance, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Instantiate(g.ids.NewID(), false))
	}
	return out
}

// NewID draws one id from the generator's id source.
func (g *Generator) NewID() string { return g.ids.NewID() }
