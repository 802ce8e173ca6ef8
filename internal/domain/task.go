package domain

// TaskTemplate is an immutable catalog entry.
type TaskTemplate struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Zone      Zone      `json:"zone" yaml:"zone"`
	Energy    Energy    `json:"energy" yaml:"energy"`
	Frequency Frequency `json:"frequency" yaml:"frequency"`
	Why       string    `json:"why,omitempty" yaml:"why,omitempty"`
}

// TaskInstance is a scheduled, mutable copy of a task. Its ID is generated
// when the instance is created and is never a template ID.
type TaskInstance struct {
	ID          string    `json:"id" yaml:"id"`
	Text        string    `json:"text" yaml:"text"`
	Zone        Zone      `json:"zone" yaml:"zone"`
	Energy      Energy    `json:"energy" yaml:"energy"`
	Frequency   Frequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Why         string    `json:"why,omitempty" yaml:"why,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	Note        string    `json:"note" yaml:"note"`
	IsEssential bool      `json:"isEssential,omitempty" yaml:"isEssential,omitempty"`
}

// Instantiate copies a template into a fresh, incomplete instance.
func (t TaskTemplate) Instantiate(id string, essential bool) TaskInstance {
	return TaskInstance{
		ID:          id,
		Text:        t.Text,
		Zone:        t.Zone,
		Energy:      t.Energy,
		Frequency:   t.Frequency,
		Why:         t.Why,
		IsEssential: essential,
	}
}

// Draft returns the template as a TaskDraft, used when a library entry is
// added to a plan by hand.
func (t TaskTemplate) Draft() TaskDraft {
	return TaskDraft{
		Text:      t.Text,
		Zone:      t.Zone,
		Energy:    t.Energy,
		Frequency: t.Frequency,
		Why:       t.Why,
	}
}

// TaskDraft carries the caller-supplied fields of a new task. It has no ID:
// the planner always assigns one.
type TaskDraft struct {
	Text        string
	Zone        Zone
	Energy      Energy
	Frequency   Frequency
	Why         string
	Note        string
	IsEssential bool
}

// Instance builds an incomplete TaskInstance from the draft.
func (d TaskDraft) Instance(id string) TaskInstance {
	return TaskInstance{
		ID:          id,
		Text:        d.Text,
		Zone:        d.Zone,
		Energy:      d.Energy,
		Frequency:   d.Frequency,
		Why:         d.Why,
		Note:        d.Note,
		IsEssential: d.IsEssential,
	}
}

// TaskPatch is a shallow field merge. Nil fields are left untouched.
type TaskPatch struct {
	Text        *string
	Zone        *Zone
	Energy      *Energy
	Frequency   *Frequency
	Why         *string
	Note        *string
	Completed   *bool
	IsEssential *bool
}

// Empty reports whether the patch would change nothing.
func (p TaskPatch) Empty() bool {
	return p.Text == nil && p.Zone == nil && p.Energy == nil && p.Frequency == nil &&
		p.Why == nil && p.Note == nil && p.Completed == nil && p.IsEssential == nil
}

// Apply returns a copy of t with the patch merged in. The ID is never touched.
func (p TaskPatch) Apply(t TaskInstance) TaskInstance {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Zone != nil {
		t.Zone = *p.Zone
	}
	if p.Energy != nil {
		t.Energy = *p.Energy
	}
	if p.Frequency != nil {
		t.Frequency = *p.Frequency
	}
	if p.Why != nil {
		t.Why = *p.Why
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.IsEssential != nil {
		t.IsEssential = *p.IsEssential
	}
	return t
}
