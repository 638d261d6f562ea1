package brag

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// goalsName is the normalized title of a user's standing goal list.
const goalsName = "Goals"

// Session is an ordered checklist under one heading. Dated sessions carry the
// parsed date; ad-hoc sections (including goals) leave Date at its zero value.
type Session struct {
	Name  string
	Date  time.Time
	Tasks []*Task
}

// NewSession builds a session from its heading text. A YYYY-MM-DD title
// becomes a dated session; any title containing "goals" is normalized to the
// user's goal list.
func NewSession(title string) *Session {
	title = strings.TrimSpace(title)
	s := &Session{Name: title}
	if date, err := time.Parse(dateLayout, title); err == nil {
		s.Date = date
	}
	if strings.Contains(strings.ToLower(title), "goals") {
		s.Name = goalsName
	}
	return s
}

// Dated reports whether the session heading parsed as a calendar date.
func (s *Session) Dated() bool {
	return !s.Date.IsZero()
}

// IsGoals reports whether this session is a goal list rather than dated work.
func (s *Session) IsGoals() bool {
	return s.Name == goalsName
}

// GetTask returns the task with the given name, or nil when absent. Absence
// is a normal outcome here, not an error.
func (s *Session) GetTask(name string) *Task {
	probe := Task{Name: name}
	for _, t := range s.Tasks {
		if sameTask(t, &probe) {
			return t
		}
	}
	return nil
}

// AddTask appends a task, or folds it into an existing task of the same name.
func (s *Session) AddTask(t *Task) {
	if existing := s.GetTask(t.Name); existing != nil {
		existing.Update(t)
		return
	}
	s.Tasks = append(s.Tasks, t)
}

// Update merges the incoming session's tasks into this one. Matching tasks
// (by name) take the incoming status and comment; unmatched tasks are
// appended in the incoming order. Nothing is ever removed.
func (s *Session) Update(other *Session) {
	for _, t := range other.Tasks {
		if existing := s.GetTask(t.Name); existing != nil {
			existing.Update(t)
		} else {
			s.Tasks = append(s.Tasks, cloneTask(t))
		}
	}
}

// Unfinished returns a view of the session holding only tasks that are not
// done. Partial tasks still count as open. The tasks are shared, not copied.
func (s *Session) Unfinished() *Session {
	open := &Session{Name: s.Name, Date: s.Date}
	for _, t := range s.Tasks {
		if !t.Status.Complete() {
			open.Tasks = append(open.Tasks, t)
		}
	}
	return open
}

// Render formats the session. simple is forwarded to each task; withTitle
// controls the "## " heading, which inline blocks omit.
func (s *Session) Render(simple, withTitle bool) string {
	var b strings.Builder
	if withTitle {
		fmt.Fprintf(&b, "## %s\n\n", s.Name)
	}
	for i, t := range s.Tasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.Render(simple))
	}
	return b.String()
}

func (s *Session) String() string {
	return s.Render(false, true)
}

func cloneSession(s *Session) *Session {
	clone := &Session{Name: s.Name, Date: s.Date}
	clone.Tasks = make([]*Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		clone.Tasks = append(clone.Tasks, cloneTask(t))
	}
	return clone
}

func sameSession(a, b *Session) bool {
	return a.Name == b.Name
}
