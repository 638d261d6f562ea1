package brag

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ruleWidth is the horizontal rule separating user blocks in the document.
const ruleWidth = 60

func rule() string {
	return strings.Repeat("-", ruleWidth)
}

// Document is the whole progress log: every user with their goals and
// sessions, in first-seen order.
type Document struct {
	Users []*User
}

// Parse reads the markdown dialect into a document tree. Parsing is lenient:
// unknown lines are skipped, session headings that are not dates become
// undated sessions. Only two defects are fatal, a user header with no name
// and a bracketed status outside {X, O, blank}; both surface as *ParseError.
func Parse(text string) (*Document, error) {
	doc := &Document{}
	var (
		user    *User
		session *Session
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "## "):
			if user == nil {
				session = nil
				continue
			}
			session = attachSession(user, NewSession(line[3:]))

		case line == "#" || strings.HasPrefix(line, "# "):
			name, email := splitNameEmail(strings.TrimSpace(strings.TrimPrefix(line, "#")))
			if name == "" {
				return nil, &ParseError{Line: lineNo, Msg: "user header missing name"}
			}
			user = &User{Name: name, Email: email}
			if existing := doc.GetUser(name); existing != nil {
				user = existing
			} else {
				doc.Users = append(doc.Users, user)
			}
			session = nil

		default:
			if session == nil {
				continue
			}
			task, ok, err := parseTask(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			if ok {
				session.AddTask(task)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// attachSession hooks a freshly parsed heading into the user, folding it into
// the goal list or an existing session of the same name so that a document
// never ends up with two sessions for one heading.
func attachSession(user *User, s *Session) *Session {
	if s.IsGoals() {
		if user.Goals == nil {
			user.Goals = s
		}
		return user.Goals
	}
	if existing := user.GetSession(s.Name); existing != nil {
		return existing
	}
	user.Sessions = append(user.Sessions, s)
	return s
}

// splitNameEmail splits "Name <email>" header text at the first angle bracket.
func splitNameEmail(header string) (string, string) {
	idx := strings.Index(header, "<")
	if idx < 0 {
		return strings.TrimSpace(header), ""
	}
	name := strings.TrimSpace(header[:idx])
	email := header[idx+1:]
	if end := strings.Index(email, ">"); end >= 0 {
		email = email[:end]
	}
	return name, strings.TrimSpace(email)
}

// Render serializes the document: user blocks joined by a horizontal rule.
func (d *Document) Render() string {
	blocks := make([]string, 0, len(d.Users))
	for _, u := range d.Users {
		blocks = append(blocks, u.Render())
	}
	return strings.Join(blocks, "\n\n"+rule()+"\n\n")
}

func (d *Document) String() string {
	return d.Render()
}

// GetUser returns the user with the given name (case-insensitive), or nil.
func (d *Document) GetUser(name string) *User {
	probe := User{Name: name}
	for _, u := range d.Users {
		if sameUser(u, &probe) {
			return u
		}
	}
	return nil
}

// AddUser appends a user to the document.
func (d *Document) AddUser(u *User) {
	d.Users = append(d.Users, u)
}

// Update merges the incoming document into this one. Known users (matched by
// name, case-insensitive) merge recursively; new users are appended. The
// merge never deletes anything, and on conflicting task fields the incoming
// side wins, so the operation is deliberately not commutative.
func (d *Document) Update(other *Document) {
	for _, u := range other.Users {
		if existing := d.GetUser(u.Name); existing != nil {
			existing.Update(u)
		} else {
			d.Users = append(d.Users, cloneUser(u))
		}
	}
}

// Filter returns a view of the document restricted to the named users.
// Matching is case-insensitive; unknown names are ignored.
func (d *Document) Filter(names []string) *Document {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[strings.ToLower(strings.TrimSpace(name))] = true
	}
	filtered := &Document{}
	for _, u := range d.Users {
		if keep[strings.ToLower(u.Name)] {
			filtered.Users = append(filtered.Users, u)
		}
	}
	return filtered
}

// SessionDates returns every distinct session date in the document, ascending.
func (d *Document) SessionDates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, u := range d.Users {
		for _, s := range u.Sessions {
			if s.Dated() && !seen[s.Date] {
				seen[s.Date] = true
				dates = append(dates, s.Date)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// CurrentDate returns the latest session date across all users.
func (d *Document) CurrentDate() (time.Time, error) {
	dates := d.SessionDates()
	if len(dates) < 1 {
		return time.Time{}, ErrInsufficientHistory
	}
	return dates[len(dates)-1], nil
}

// LastDate returns the second-latest session date across all users.
func (d *Document) LastDate() (time.Time, error) {
	dates := d.SessionDates()
	if len(dates) < 2 {
		return time.Time{}, ErrInsufficientHistory
	}
	return dates[len(dates)-2], nil
}

// SessionReport renders every user's session for one date. Users without a
// session on that date are skipped.
func (d *Document) SessionReport(date time.Time) string {
	var b strings.Builder
	for _, u := range d.Users {
		session := u.SessionOn(date)
		if session == nil {
			continue
		}
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", u.Name, session)
	}
	return strings.TrimSpace(b.String())
}

// Template renders the skeleton handed to an editor for the next session:
// per user, the still-open goals, the most recent session for reference, and
// a fresh stub for today with a placeholder task.
func (d *Document) Template(now time.Time) string {
	latest, err := d.CurrentDate()
	hasHistory := err == nil

	var b strings.Builder
	for _, u := range d.Users {
		fmt.Fprintf(&b, "# %s\n\n", u.Name)
		if u.Goals != nil {
			b.WriteString(u.Goals.Unfinished().Render(true, true))
			b.WriteString("\n\n")
		}
		if hasHistory {
			if session := u.SessionOn(latest); session != nil {
				b.WriteString(session.String())
				b.WriteString("\n\n")
			}
		}
		fmt.Fprintf(&b, "## %s\n\n- %s\n\n", now.Format(dateLayout), placeholder)
		b.WriteString(rule())
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
