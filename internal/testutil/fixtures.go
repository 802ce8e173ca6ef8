package testutil

import (
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
)

// Draft options
type DraftOption func(*domain.TaskDraft)

func WithZone(z domain.Zone) DraftOption {
	return func(d *domain.TaskDraft) {
		d.Zone = z
	}
}

func WithEnergy(e domain.Energy) DraftOption {
	return func(d *domain.TaskDraft) {
		d.Energy = e
	}
}

func WithFrequency(f domain.Frequency) DraftOption {
	return func(d *domain.TaskDraft) {
		d.Frequency = f
	}
}

func WithNote(note string) DraftOption {
	return func(d *domain.TaskDraft) {
		d.Note = note
	}
}

func Essential() DraftOption {
	return func(d *domain.TaskDraft) {
		d.IsEssential = true
	}
}

// NewTestDraft returns a low-energy kitchen draft with the given text.
func NewTestDraft(text string, opts ...DraftOption) domain.TaskDraft {
	d := domain.TaskDraft{
		Text:   text,
		Zone:   domain.ZoneKitchen,
		Energy: domain.EnergyLow,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// FixedClock returns a clock function pinned to the given date at 09:00 UTC.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
