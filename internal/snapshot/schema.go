// Package snapshot defines the serialized form of a planner state, shared
// by persistence and export/import.
package snapshot

import (
	"github.com/alexanderramin/choreplan/internal/domain"
)

// Version is the current document version. Version 0 documents (a bare
// {"state": ..., "version": 0} envelope) are still accepted on decode.
const Version = 1

// Document is the top-level envelope.
type Document struct {
	Version    int      `json:"version" yaml:"version"`
	ExportedAt string   `json:"exportedAt,omitempty" yaml:"exportedAt,omitempty"`
	State      StateDoc `json:"state" yaml:"state"`
}

// StateDoc mirrors domain.PlannerState with wire field names.
type StateDoc struct {
	CurrentWeekStart string                           `json:"currentWeekStart" yaml:"currentWeekStart"`
	ViewMode         domain.ViewMode                  `json:"viewMode" yaml:"viewMode"`
	WeekData         map[string]WeekDoc               `json:"weekData" yaml:"weekData"`
	MonthlyData      map[string][]domain.TaskInstance `json:"monthlyData" yaml:"monthlyData"`
	YearlyData       map[string][]domain.TaskInstance `json:"yearlyData" yaml:"yearlyData"`
	TaskBank         []domain.TaskTemplate            `json:"taskBank" yaml:"taskBank"`
}

// WeekDoc is a week bucket on the wire. Days must have exactly seven
// entries.
type WeekDoc struct {
	Days [][]domain.TaskInstance `json:"days" yaml:"days"`
}

// FromState converts a state into its wire form. Nil slices and maps are
// written as empty so the document never carries nulls.
func FromState(s *domain.PlannerState) StateDoc {
	doc := StateDoc{
		CurrentWeekStart: s.CurrentWeekStart,
		ViewMode:         s.ViewMode,
		WeekData:         make(map[string]WeekDoc, len(s.WeekData)),
		MonthlyData:      make(map[string][]domain.TaskInstance, len(s.MonthlyData)),
		YearlyData:       make(map[string][]domain.TaskInstance, len(s.YearlyData)),
		TaskBank:         nonNil(s.TaskBank),
	}
	for k, w := range s.WeekData {
		days := make([][]domain.TaskInstance, domain.DaysPerWeek)
		for i, d := range w.Days {
			days[i] = nonNil(d)
		}
		doc.WeekData[k] = WeekDoc{Days: days}
	}
	for k, m := range s.MonthlyData {
		doc.MonthlyData[k] = nonNil(m)
	}
	for k, y := range s.YearlyData {
		doc.YearlyData[k] = nonNil(y)
	}
	return doc
}

// toState converts a validated document into a state.
func (d StateDoc) toState() *domain.PlannerState {
	s := &domain.PlannerState{
		CurrentWeekStart: d.CurrentWeekStart,
		ViewMode:         d.ViewMode,
		WeekData:         make(map[string]domain.WeekBucket, len(d.WeekData)),
		MonthlyData:      make(map[string][]domain.TaskInstance, len(d.MonthlyData)),
		YearlyData:       make(map[string][]domain.TaskInstance, len(d.YearlyData)),
		TaskBank:         nonNil(d.TaskBank),
	}
	for k, w := range d.WeekData {
		var week domain.WeekBucket
		copy(week.Days[:], w.Days)
		for i := range week.Days {
			week.Days[i] = nonNil(week.Days[i])
		}
		s.WeekData[k] = week
	}
	for k, m := range d.MonthlyData {
		s.MonthlyData[k] = nonNil(m)
	}
	for k, y := range d.YearlyData {
		s.YearlyData[k] = nonNil(y)
	}
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
