package brag

// Stats tallies a user's tasks across all dated and ad-hoc sessions.
// Goals are standing objectives and are left out of the count.
type Stats struct {
	Done    int
	Partial int
	Missed  int
}

// Total returns the number of counted tasks.
func (s Stats) Total() int {
	return s.Done + s.Partial + s.Missed
}

// CompletionRatio is done over done+missed. Partial tasks are in flight and
// excluded; a user with nothing resolved yet scores 0 rather than dividing
// by zero.
func (s Stats) CompletionRatio() float64 {
	resolved := s.Done + s.Missed
	if resolved == 0 {
		return 0
	}
	return float64(s.Done) / float64(resolved)
}

// Stats counts the user's session tasks by status.
func (u *User) Stats() Stats {
	var stats Stats
	for _, session := range u.Sessions {
		for _, t := range session.Tasks {
			switch t.Status {
			case StatusDone:
				stats.Done++
			case StatusPartial:
				stats.Partial++
			default:
				stats.Missed++
			}
		}
	}
	return stats
}
