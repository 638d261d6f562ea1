package brag

import (
	"errors"
	"math"
	"testing"
	"time"
)

func datedSession(t *testing.T, date string, tasks ...*Task) *Session {
	t.Helper()
	s := NewSession(date)
	if !s.Dated() {
		t.Fatalf("session %q did not parse as dated", date)
	}
	s.Tasks = tasks
	return s
}

func TestUserSortedSessionsDatedFirst(t *testing.T) {
	u := &User{Name: "Manuel"}
	u.Sessions = []*Session{
		NewSession("Ad-hoc ideas"),
		datedSession(t, "2016-03-01"),
		NewSession("Scratchpad"),
		datedSession(t, "2016-02-22"),
	}

	sorted := u.SortedSessions()
	want := []string{"2016-02-22", "2016-03-01", "Ad-hoc ideas", "Scratchpad"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Fatalf("sorted[%d].Name = %q, want %q", i, sorted[i].Name, name)
		}
	}
}

func TestUserCurrentAndLastSession(t *testing.T) {
	u := &User{Name: "Manuel"}
	u.Sessions = []*Session{
		datedSession(t, "2016-03-01"),
		datedSession(t, "2016-02-22"),
		NewSession("Notes"),
	}

	current, err := u.CurrentSession()
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if current.Name != "2016-03-01" {
		t.Fatalf("current.Name = %q, want %q", current.Name, "2016-03-01")
	}

	last, err := u.LastSession()
	if err != nil {
		t.Fatalf("LastSession: %v", err)
	}
	if last.Name != "2016-02-22" {
		t.Fatalf("last.Name = %q, want %q", last.Name, "2016-02-22")
	}
}

func TestUserSessionQueriesWithSparseHistory(t *testing.T) {
	u := &User{Name: "Manuel", Sessions: []*Session{NewSession("Notes")}}

	if _, err := u.CurrentSession(); !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("CurrentSession error = %v, want ErrInsufficientHistory", err)
	}

	u.Sessions = append(u.Sessions, datedSession(t, "2016-02-22"))
	if _, err := u.CurrentSession(); err != nil {
		t.Fatalf("CurrentSession with one dated session: %v", err)
	}
	if _, err := u.LastSession(); !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("LastSession error = %v, want ErrInsufficientHistory", err)
	}
}

func TestUserUpdateMergesGoalsAndSessions(t *testing.T) {
	base := &User{Name: "Manuel"}
	base.Goals = NewSession("Goals")
	base.Goals.Tasks = []*Task{{Name: "Run a marathon", Status: StatusIncomplete}}
	base.Sessions = []*Session{
		datedSession(t, "2016-02-22", &Task{Name: "A", Status: StatusIncomplete}),
	}

	incoming := &User{Name: "manuel"}
	incoming.Goals = NewSession("Goals")
	incoming.Goals.Tasks = []*Task{
		{Name: "Run a marathon", Status: StatusPartial, Comment: "10k so far"},
		{Name: "Learn Go", Status: StatusIncomplete},
	}
	incoming.Sessions = []*Session{
		datedSession(t, "2016-02-22", &Task{Name: "A", Status: StatusDone}),
		datedSession(t, "2016-03-01", &Task{Name: "B", Status: StatusIncomplete}),
	}

	base.Update(incoming)

	if len(base.Goals.Tasks) != 2 {
		t.Fatalf("len(base.Goals.Tasks) = %d, want 2", len(base.Goals.Tasks))
	}
	if base.Goals.Tasks[0].Status != StatusPartial || base.Goals.Tasks[0].Comment != "10k so far" {
		t.Fatalf("goal task not overwritten: %+v", base.Goals.Tasks[0])
	}
	if len(base.Sessions) != 2 {
		t.Fatalf("len(base.Sessions) = %d, want 2", len(base.Sessions))
	}
	if base.Sessions[0].Tasks[0].Status != StatusDone {
		t.Fatalf("matched session task not updated: %+v", base.Sessions[0].Tasks[0])
	}
	if base.Sessions[1].Name != "2016-03-01" {
		t.Fatalf("new session not appended, got %q", base.Sessions[1].Name)
	}
}

func TestUserUpdateCreatesGoalsWhenMissing(t *testing.T) {
	base := &User{Name: "Ana"}
	incoming := &User{Name: "Ana"}
	incoming.Goals = NewSession("Goals")
	incoming.Goals.Tasks = []*Task{{Name: "Ship v1", Status: StatusIncomplete}}

	base.Update(incoming)

	if base.Goals == nil || len(base.Goals.Tasks) != 1 {
		t.Fatalf("base.Goals = %+v, want a clone of the incoming goal list", base.Goals)
	}
	if base.Goals == incoming.Goals {
		t.Fatal("base goals alias the incoming document")
	}
}

func TestUserDisplayName(t *testing.T) {
	withEmail := &User{Name: "Manuel", Email: "manuel@1450.me"}
	if got, want := withEmail.DisplayName(), "Manuel <manuel@1450.me>"; got != want {
		t.Fatalf("DisplayName = %q, want %q", got, want)
	}
	plain := &User{Name: "Ana"}
	if got := plain.DisplayName(); got != "Ana" {
		t.Fatalf("DisplayName = %q, want %q", got, "Ana")
	}
}

func TestUserRenderOmitsMissingGoals(t *testing.T) {
	u := &User{Name: "Ana"}
	u.Sessions = []*Session{
		datedSession(t, "2016-02-22", &Task{Name: "A", Status: StatusDone}),
	}

	want := "# Ana\n\n## 2016-02-22\n\n- [X] A"
	if got := u.Render(); got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestUserStats(t *testing.T) {
	u := &User{Name: "Manuel"}
	u.Goals = NewSession("Goals")
	u.Goals.Tasks = []*Task{{Name: "Not counted", Status: StatusDone}}
	u.Sessions = []*Session{
		datedSession(t, "2016-02-22",
			&Task{Name: "A", Status: StatusDone},
			&Task{Name: "B", Status: StatusDone},
			&Task{Name: "C", Status: StatusPartial},
		),
		datedSession(t, "2016-03-01",
			&Task{Name: "D", Status: StatusIncomplete},
		),
	}

	stats := u.Stats()
	if stats.Done != 2 || stats.Partial != 1 || stats.Missed != 1 {
		t.Fatalf("stats = %+v, want done=2 partial=1 missed=1", stats)
	}
	if stats.Total() != 4 {
		t.Fatalf("stats.Total() = %d, want 4", stats.Total())
	}
	if ratio := stats.CompletionRatio(); math.Abs(ratio-2.0/3.0) > 1e-9 {
		t.Fatalf("CompletionRatio = %f, want 2/3", ratio)
	}
}

func TestCompletionRatioZeroGuard(t *testing.T) {
	var stats Stats
	if ratio := stats.CompletionRatio(); ratio != 0 {
		t.Fatalf("CompletionRatio of empty stats = %f, want 0", ratio)
	}
	onlyPartial := Stats{Partial: 3}
	if ratio := onlyPartial.CompletionRatio(); ratio != 0 {
		t.Fatalf("CompletionRatio with only partial tasks = %f, want 0", ratio)
	}
}

func TestSameUserIsCaseInsensitive(t *testing.T) {
	if !sameUser(&User{Name: "Manuel"}, &User{Name: "MANUEL"}) {
		t.Fatal("user identity should ignore case")
	}
	if sameUser(&User{Name: "Manuel"}, &User{Name: "Ana"}) {
		t.Fatal("distinct users compared equal")
	}
}

func TestUserSessionOn(t *testing.T) {
	u := &User{Name: "Manuel"}
	target := datedSession(t, "2016-02-22")
	u.Sessions = []*Session{target, NewSession("Notes")}

	date := time.Date(2016, time.February, 22, 0, 0, 0, 0, time.UTC)
	if got := u.SessionOn(date); got != target {
		t.Fatalf("SessionOn = %v, want the dated session", got)
	}
	if got := u.SessionOn(date.AddDate(0, 0, 1)); got != nil {
		t.Fatalf("SessionOn for unknown date = %v, want nil", got)
	}
}
