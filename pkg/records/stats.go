package records

import "time"

// Stats are the totals shown by productivity history.
type Stats struct {
	Entries int `json:"entries"`
	// Recent counts entries created after the since time given to Stats.
	Recent          int           `json:"recent"`
	AvgProductivity float64       `json:"avgProductivity"`
	TodosDone       int           `json:"todosDone"`
	Todos           int           `json:"todos"`
	GoalsDone       int           `json:"goalsDone"`
	Goals           int           `json:"goals"`
	Studied         time.Duration `json:"studied"`
}

// Stats totals every list in s.
func (s *Set) Stats(since time.Time) Stats {
	var st Stats
	var scored, sum int
	for _, e := range s.Journal.List() {
		st.Entries++
		if e.Created.After(since) {
			st.Recent++
		}
		if e.Productivity > 0 {
			sum += e.Productivity
			scored++
		}
	}
	if scored > 0 {
		st.AvgProductivity = float64(sum) / float64(scored)
	}
	for _, t := range s.Todos.List() {
		st.Todos++
		if t.Completed {
			st.TodosDone++
		}
	}
	for _, g := range s.Goals.List() {
		st.Goals++
		if g.Completed {
			st.GoalsDone++
		}
	}
	for _, ss := range s.StudySessions.List() {
		if ss.Completed {
			st.Studied += ss.Duration
		}
	}
	return st
}

// DayCounts counts the entries journaled on each day of the month of then.
// An entry's Date wins over its creation time.
func DayCounts(then time.Time, entries ...JournalEntry) []int {
	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location())
	count := make([]int, first.AddDate(0, 1, -1).Day())
	for _, e := range entries {
		day := e.Created.In(then.Location())
		if e.Date != "" {
			if d, err := time.ParseInLocation("2006-01-02", e.Date, then.Location()); err == nil {
				day = d
			}
		}
		if day.Year() == then.Year() && day.Month() == then.Month() {
			count[day.Day()-1]++
		}
	}
	return count
}
