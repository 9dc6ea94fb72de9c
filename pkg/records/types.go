package records

import (
	"fmt"
	"strings"
	"time"
)

// Storage keys.
const (
	KeyNotes               = "notes"
	KeyGoals               = "goals"
	KeySavedGoals          = "savedGoals"
	KeyTodos               = "todos"
	KeyResources           = "resources"
	KeyProductivityEntries = "productivityEntries"
	KeyStudySessions       = "studySessions"
	KeySongs               = "songs"
	KeyQueue               = "queue"
)

// Note is a free-form markdown note.
type Note struct {
	Meta
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Updated time.Time `json:"updated,omitempty"`
}

// Summary implements Record.
func (n Note) Summary() Summary {
	return Summary{ID: n.ID, Title: n.Title, Detail: firstLine(n.Body), Created: n.Created}
}

// Goal tracks progress towards a target.
type Goal struct {
	Meta
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Progress    int        `json:"progress"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   bool       `json:"completed"`
}

// Summary implements Record.
func (g Goal) Summary() Summary {
	detail := fmt.Sprintf("%d%%", g.Progress)
	if g.Deadline != nil {
		detail += " by " + g.Deadline.Format("2006-01-02")
	}
	return Summary{ID: g.ID, Title: g.Title, Detail: detail, Done: g.Completed, Created: g.Created}
}

// Todo is a single task.
type Todo struct {
	Meta
	Text      string `json:"text"`
	Priority  string `json:"priority,omitempty"`
	Completed bool   `json:"completed"`
}

// Summary implements Record.
func (t Todo) Summary() Summary {
	return Summary{ID: t.ID, Title: t.Text, Detail: t.Priority, Done: t.Completed, Created: t.Created}
}

// Resource is a saved link or reference.
type Resource struct {
	Meta
	Title    string   `json:"title"`
	URL      string   `json:"url,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Summary implements Record.
func (r Resource) Summary() Summary {
	return Summary{ID: r.ID, Title: r.Title, Detail: r.URL, Created: r.Created}
}

// JournalEntry is one day's productivity journal.
type JournalEntry struct {
	Meta
	Date         string `json:"date"`
	Mood         int    `json:"mood,omitempty"`
	Productivity int    `json:"productivity,omitempty"`
	Accomplished string `json:"accomplished,omitempty"`
	Reflection   string `json:"reflection,omitempty"`
}

// Summary implements Record.
func (j JournalEntry) Summary() Summary {
	title := j.Date
	if title == "" {
		title = j.Created.Format("2006-01-02")
	}
	return Summary{ID: j.ID, Title: title, Detail: firstLine(j.Accomplished), Created: j.Created}
}

// StudySession is a scheduled or completed block of focused study.
type StudySession struct {
	Meta
	Subject   string        `json:"subject"`
	Start     time.Time     `json:"start"`
	Duration  time.Duration `json:"duration"`
	Completed bool          `json:"completed"`
}

// Summary implements Record.
func (s StudySession) Summary() Summary {
	detail := s.Duration.Round(time.Minute).String()
	if !s.Start.IsZero() {
		detail = s.Start.Format("2006-01-02 15:04") + " " + detail
	}
	return Summary{ID: s.ID, Title: s.Subject, Detail: detail, Done: s.Completed, Created: s.Created}
}

// Song is a music player track.
type Song struct {
	Meta
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Summary implements Record.
func (s Song) Summary() Summary {
	return Summary{ID: s.ID, Title: s.Title, Detail: s.Artist, Created: s.Created}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
