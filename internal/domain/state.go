package domain

// WeekBucket holds one week of tasks, one slot per weekday starting Monday.
// The zero value is an empty week; a nil slot reads as an empty day.
type WeekBucket struct {
	Days [DaysPerWeek][]TaskInstance
}

// Day returns slot i, or nil when i is out of range.
func (w WeekBucket) Day(i int) []TaskInstance {
	if i < 0 || i >= DaysPerWeek {
		return nil
	}
	return w.Days[i]
}

// WithDay returns a copy of the week with slot i replaced. Other slots keep
// their backing arrays.
func (w WeekBucket) WithDay(i int, tasks []TaskInstance) WeekBucket {
	w.Days[i] = tasks
	return w
}

// Len counts the tasks across all days.
func (w WeekBucket) Len() int {
	n := 0
	for _, d := range w.Days {
		n += len(d)
	}
	return n
}

// PlannerState is the full persisted planner document.
type PlannerState struct {
	CurrentWeekStart string
	ViewMode         ViewMode
	WeekData         map[string]WeekBucket
	MonthlyData      map[string][]TaskInstance
	YearlyData       map[string][]TaskInstance
	TaskBank         []TaskTemplate
}

// FindTask returns the index of the task with id in tasks, or -1.
func FindTask(tasks []TaskInstance, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Progress is a completed/total count for a day or bucket.
type Progress struct {
	Completed int
	Total     int
}

// CountProgress tallies completion over tasks.
func CountProgress(tasks []TaskInstance) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	return p
}

// Add sums two progress counts.
func (p Progress) Add(o Progress) Progress {
	return Progress{Completed: p.Completed + o.Completed, Total: p.Total + o.Total}
}

// Ratio is Completed/Total, or 0 for an empty set.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Done reports a non-empty set with every task completed.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// SplitEssentials separates daily essentials from focus tasks, keeping order.
func SplitEssentials(tasks []TaskInstance) (essentials, focus []TaskInstance) {
	for _, t := range tasks {
		if t.IsEssential {
			essentials = append(essentials, t)
		} else {
			focus = append(focus, t)
		}
	}
	return essentials, focus
}
