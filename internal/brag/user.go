package brag

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// User owns a goal list and a series of work sessions. Name is the identity
// field and is matched case-insensitively; Email is descriptive only.
type User struct {
	Name     string
	Email    string
	Goals    *Session
	Sessions []*Session
}

// DisplayName renders the user header text, "Name <email>" when an email is set.
func (u *User) DisplayName() string {
	if u.Email == "" {
		return u.Name
	}
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}

// GetSession returns the session with the given heading, or nil when absent.
func (u *User) GetSession(name string) *Session {
	probe := Session{Name: name}
	for _, s := range u.Sessions {
		if sameSession(s, &probe) {
			return s
		}
	}
	return nil
}

// SessionOn returns the dated session for the given day, or nil when absent.
func (u *User) SessionOn(date time.Time) *Session {
	for _, s := range u.Sessions {
		if s.Dated() && s.Date.Equal(date) {
			return s
		}
	}
	return nil
}

// SortedSessions returns the sessions ordered chronologically. Undated
// sessions are not comparable by date; they keep their relative order and
// sort after every dated session.
func (u *User) SortedSessions() []*Session {
	sorted := make([]*Session, len(u.Sessions))
	copy(sorted, u.Sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Dated() || !sorted[j].Dated() {
			return sorted[i].Dated() && !sorted[j].Dated()
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// CurrentSession returns the chronologically latest dated session.
func (u *User) CurrentSession() (*Session, error) {
	dated := u.datedSessions()
	if len(dated) < 1 {
		return nil, ErrInsufficientHistory
	}
	return dated[len(dated)-1], nil
}

// LastSession returns the second-latest dated session.
func (u *User) LastSession() (*Session, error) {
	dated := u.datedSessions()
	if len(dated) < 2 {
		return nil, ErrInsufficientHistory
	}
	return dated[len(dated)-2], nil
}

func (u *User) datedSessions() []*Session {
	var dated []*Session
	for _, s := range u.SortedSessions() {
		if s.Dated() {
			dated = append(dated, s)
		}
	}
	return dated
}

// Update merges the incoming user's goals and sessions into this one.
// Sessions match by heading; matched sessions merge their tasks, unmatched
// ones are appended after the existing sessions.
func (u *User) Update(other *User) {
	if other.Goals != nil {
		if u.Goals == nil {
			u.Goals = cloneSession(other.Goals)
		} else {
			u.Goals.Update(other.Goals)
		}
	}
	for _, s := range other.Sessions {
		if existing := u.GetSession(s.Name); existing != nil {
			existing.Update(s)
		} else {
			u.Sessions = append(u.Sessions, cloneSession(s))
		}
	}
}

// Render formats the user's full record: header, goals, then sessions in
// chronological order separated by blank lines.
func (u *User) Render() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(u.DisplayName())
	if u.Goals != nil {
		b.WriteString("\n\n")
		b.WriteString(u.Goals.String())
	}
	for _, s := range u.SortedSessions() {
		b.WriteString("\n\n")
		b.WriteString(s.String())
	}
	return b.String()
}

func (u *User) String() string {
	return u.Render()
}

func cloneUser(u *User) *User {
	clone := &User{Name: u.Name, Email: u.Email}
	if u.Goals != nil {
		clone.Goals = cloneSession(u.Goals)
	}
	clone.Sessions = make([]*Session, 0, len(u.Sessions))
	for _, s := range u.Sessions {
		clone.Sessions = append(clone.Sessions, cloneSession(s))
	}
	return clone
}

func sameUser(a, b *User) bool {
	return strings.EqualFold(a.Name, b.Name)
}
