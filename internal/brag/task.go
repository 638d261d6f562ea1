package brag

import (
	"regexp"
	"strings"
)

// placeholder is the stub task written into templates. It never survives a parse.
const placeholder = "..."

// Task is a single checklist item. Name is its identity and never changes
// after creation; Status and Comment are replaced wholesale on merge.
type Task struct {
	Name    string
	Status  Status
	Comment string
}

// Update overwrites status and comment with the incoming task's values.
// The incoming side always wins; the name is left untouched.
func (t *Task) Update(other *Task) {
	t.Status = other.Status
	t.Comment = other.Comment
}

// Render formats the task as a checklist line. In simple mode incomplete
// tasks drop the bracket, which reads better in goal templates.
func (t *Task) Render(simple bool) string {
	var b strings.Builder
	b.Grow(8 + len(t.Name) + len(t.Comment))
	if simple && t.Status == StatusIncomplete {
		b.WriteString("- ")
		b.WriteString(t.Name)
	} else {
		b.WriteString("- [")
		b.WriteByte(t.Status.Symbol())
		b.WriteString("] ")
		b.WriteString(t.Name)
	}
	if t.Comment != "" {
		b.WriteString(" -- ")
		b.WriteString(t.Comment)
	}
	return b.String()
}

func (t *Task) String() string {
	return t.Render(false)
}

func cloneTask(t *Task) *Task {
	clone := *t
	return &clone
}

func sameTask(a, b *Task) bool {
	return a.Name == b.Name
}

var taskPattern = regexp.MustCompile(`^(?:-|\*|\d+\.)\s+(?:\[([^\]]*)\]\s*)?(.*)$`)

// parseTask reads one checklist line. ok is false for lines that are not
// checklist items (stray prose, horizontal rules, the template placeholder);
// those are skipped, not errors. A bracketed status outside {X, O, blank}
// fails instead of defaulting.
func parseTask(line string) (*Task, bool, error) {
	line = strings.TrimSpace(strings.ReplaceAll(line, "—", "--"))
	if line == "" || strings.HasPrefix(line, "---") {
		return nil, false, nil
	}

	comment := ""
	if idx := strings.Index(line, "--"); idx >= 0 {
		comment = strings.TrimSpace(line[idx+2:])
		line = line[:idx]
	}

	matches := taskPattern.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return nil, false, nil
	}

	status, err := parseStatus(matches[1])
	if err != nil {
		return nil, false, err
	}

	name := strings.TrimSpace(matches[2])
	if name == "" || name == placeholder {
		return nil, false, nil
	}

	return &Task{Name: name, Status: status, Comment: comment}, true, nil
}
