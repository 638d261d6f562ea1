package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maebert/bragmaster/internal/brag"
	"github.com/maebert/bragmaster/internal/files"
)

// Model owns Bubble Tea state for browsing and editing the brag document.
type Model struct {
	ctx     context.Context
	manager *files.Manager

	doc *brag.Document

	level      level
	userIdx    int
	sessionIdx int
	taskIdx    int

	mode  mode
	input textinput.Model

	dirty      bool
	loading    bool
	statusLine string
	errorLine  string
}

type level uint8

const (
	levelUsers level = iota
	levelSessions
	levelTasks
)

type mode uint8

const (
	modeNormal mode = iota
	modeAddTask
	modeEditComment
)

type documentLoadedMsg struct {
	doc *brag.Document
	err error
}

type documentSavedMsg struct {
	err error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200

	return Model{
		ctx:        ctx,
		manager:    manager,
		level:      levelUsers,
		mode:       modeNormal,
		input:      input,
		loading:    true,
		statusLine: "Loading brag file...",
	}
}

// Init loads the document.
func (m Model) Init() tea.Cmd {
	return m.loadDocumentCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	case documentSavedMsg:
		return m.handleDocumentSaved(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-1)
	case "enter", "right", "l":
		return m.drillIn(), nil
	case "esc", "left", "h":
		return m.backOut(), nil
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadDocumentCmd()
	case "s":
		if m.doc == nil {
			return m, nil
		}
		m.statusLine = "Saving..."
		m.errorLine = ""
		return m, m.saveDocumentCmd(m.doc)
	case " ", "x":
		m.toggleTask(brag.StatusDone)
	case "o":
		m.toggleTask(brag.StatusPartial)
	case "a":
		return m.beginAddTask()
	case "c":
		return m.beginEditComment()
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	count := len(m.currentItems())
	if count == 0 {
		return
	}
	idx := m.cursor() + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= count {
		idx = count - 1
	}
	m.setCursor(idx)
	m.errorLine = ""
}

func (m Model) cursor() int {
	switch m.level {
	case levelUsers:
		return m.userIdx
	case levelSessions:
		return m.sessionIdx
	default:
		return m.taskIdx
	}
}

func (m *Model) setCursor(idx int) {
	switch m.level {
	case levelUsers:
		m.userIdx = idx
	case levelSessions:
		m.sessionIdx = idx
	default:
		m.taskIdx = idx
	}
}

func (m Model) drillIn() Model {
	switch m.level {
	case levelUsers:
		if m.selectedUser() != nil {
			m.level = levelSessions
			m.sessionIdx = 0
		}
	case levelSessions:
		if m.selectedSession() != nil {
			m.level = levelTasks
			m.taskIdx = 0
		}
	}
	return m
}

func (m Model) backOut() Model {
	switch m.level {
	case levelTasks:
		m.level = levelSessions
	case levelSessions:
		m.level = levelUsers
	}
	return m
}

// toggleTask flips the selected task between target and incomplete.
func (m *Model) toggleTask(target brag.Status) {
	task := m.selectedTask()
	if task == nil {
		return
	}
	if task.Status == target {
		task.Status = brag.StatusIncomplete
	} else {
		task.Status = target
	}
	m.dirty = true
	m.statusLine = fmt.Sprintf("%s is now %s. Press s to save.", task.Name, task.Status)
	m.errorLine = ""
}

func (m Model) beginAddTask() (tea.Model, tea.Cmd) {
	if m.level != levelTasks || m.selectedSession() == nil {
		return m, nil
	}
	m.mode = modeAddTask
	m.input.Placeholder = "task name"
	m.input.SetValue("")
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) beginEditComment() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}
	m.mode = modeEditComment
	m.input.Placeholder = "comment"
	m.input.SetValue(task.Comment)
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		m.statusLine = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddTask:
		if value == "" {
			m.errorLine = "Task name cannot be empty."
			return m, nil
		}
		session := m.selectedSession()
		if session == nil {
			break
		}
		session.AddTask(&brag.Task{Name: value})
		m.taskIdx = len(session.Tasks) - 1
		m.dirty = true
		m.statusLine = fmt.Sprintf("Added %q. Press s to save.", value)
	case modeEditComment:
		task := m.selectedTask()
		if task == nil {
			break
		}
		task.Comment = value
		m.dirty = true
		m.statusLine = "Comment updated. Press s to save."
	}

	m.mode = modeNormal
	m.input.Blur()
	m.errorLine = ""
	return m, nil
}

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.doc = msg.doc
	m.dirty = false
	m.level = levelUsers
	m.userIdx = 0
	m.sessionIdx = 0
	m.taskIdx = 0
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Loaded %d user%s.", len(msg.doc.Users), plural(len(msg.doc.Users)))
	return m, nil
}

func (m Model) handleDocumentSaved(msg documentSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Save failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.dirty = false
	m.statusLine = fmt.Sprintf("Saved %s.", m.manager.Path())
	m.errorLine = ""
	return m, nil
}

func (m Model) loadDocumentCmd() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	return func() tea.Msg {
		doc, err := manager.Load(ctx)
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func (m Model) saveDocumentCmd(doc *brag.Document) tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	return func() tea.Msg {
		return documentSavedMsg{err: manager.Save(ctx, doc)}
	}
}

func (m Model) selectedUser() *brag.User {
	if m.doc == nil || m.userIdx >= len(m.doc.Users) {
		return nil
	}
	return m.doc.Users[m.userIdx]
}

// sessionsFor lists a user's sections with goals pinned first.
func sessionsFor(u *brag.User) []*brag.Session {
	var sessions []*brag.Session
	if u.Goals != nil {
		sessions = append(sessions, u.Goals)
	}
	return append(sessions, u.SortedSessions()...)
}

func (m Model) selectedSession() *brag.Session {
	user := m.selectedUser()
	if user == nil {
		return nil
	}
	sessions := sessionsFor(user)
	if m.sessionIdx >= len(sessions) {
		return nil
	}
	return sessions[m.sessionIdx]
}

func (m Model) selectedTask() *brag.Task {
	session := m.selectedSession()
	if session == nil || m.level != levelTasks || m.taskIdx >= len(session.Tasks) {
		return nil
	}
	return session.Tasks[m.taskIdx]
}

func (m Model) currentItems() []string {
	switch m.level {
	case levelUsers:
		if m.doc == nil {
			return nil
		}
		items := make([]string, 0, len(m.doc.Users))
		for _, u := range m.doc.Users {
			items = append(items, u.DisplayName())
		}
		return items
	case levelSessions:
		user := m.selectedUser()
		if user == nil {
			return nil
		}
		sessions := sessionsFor(user)
		items := make([]string, 0, len(sessions))
		for _, s := range sessions {
			items = append(items, s.Name)
		}
		return items
	default:
		session := m.selectedSession()
		if session == nil {
			return nil
		}
		items := make([]string, 0, len(session.Tasks))
		for _, t := range session.Tasks {
			items = append(items, renderTaskLine(t))
		}
		return items
	}
}

func renderTaskLine(t *brag.Task) string {
	line := fmt.Sprintf("[%c] %s", t.Status.Symbol(), t.Name)
	if t.Comment != "" {
		line += " -- " + t.Comment
	}
	switch t.Status {
	case brag.StatusDone:
		return doneStyle.Render(line)
	case brag.StatusPartial:
		return partialStyle.Render(line)
	default:
		return line
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		items := m.currentItems()
		if len(items) == 0 {
			b.WriteString(itemStyle.Render("(nothing here)"))
			b.WriteByte('\n')
		}
		for i, item := range items {
			if i == m.cursor() {
				b.WriteString(selectedStyle.Render("> " + item))
			} else {
				b.WriteString(itemStyle.Render("  " + item))
			}
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	if m.mode != modeNormal {
		b.WriteString("\n")
		if m.mode == modeAddTask {
			b.WriteString("New task (Enter to save, Esc to cancel):\n")
		} else {
			b.WriteString("Comment (Enter to save, Esc to cancel):\n")
		}
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) breadcrumb() string {
	title := "brag"
	if user := m.selectedUser(); user != nil && m.level >= levelSessions {
		title += " / " + user.Name
		if session := m.selectedSession(); session != nil && m.level == levelTasks {
			title += " / " + session.Name
		}
	}
	if m.dirty {
		title += " *"
	}
	return title
}

func (m Model) helpLine() string {
	base := "j/k move  enter open  esc back  r reload  s save  q quit"
	if m.level == levelTasks {
		return "space done  o partial  a add  c comment  " + base
	}
	return base
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
