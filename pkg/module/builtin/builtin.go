// Package builtin provides the content of the built-in window kinds. Every
// provider reads its records from the blob store and re-reads them on
// Refresh.
package builtin

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/deck/pkg/focus"
	"tableflip.dev/deck/pkg/glyph"
	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/tui/components/calendar"
)

// Deps are shared by every provider.
type Deps struct {
	Records *records.Set
	Now     func() time.Time
	// Style is the glamour standard style used for markdown.
	Style string
}

var books = map[module.Kind]string{
	module.KindJournal:       records.KeyProductivityEntries,
	module.KindGoals:         records.KeyGoals,
	module.KindNotes:         records.KeyNotes,
	module.KindResources:     records.KeyResources,
	module.KindTodos:         records.KeyTodos,
	module.KindStudySessions: records.KeyStudySessions,
	module.KindMusicPlayer:   records.KeySongs,
}

// BookFor returns the record collection that windows of kind list.
func BookFor(kind module.Kind) (string, bool) {
	b, ok := books[kind]
	return b, ok
}

// Register adds a factory for every built-in kind to reg.
func Register(reg *module.Registry, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Style == "" {
		deps.Style = "dark"
	}
	factories := map[module.Kind]func(Deps) module.Content{
		module.KindJournal:             func(d Deps) module.Content { return &journal{deps: d} },
		module.KindGoals:               func(d Deps) module.Content { return &goals{deps: d} },
		module.KindNotes:               func(d Deps) module.Content { return &notes{deps: d} },
		module.KindTodos:               func(d Deps) module.Content { return &todos{deps: d} },
		module.KindResources:           func(d Deps) module.Content { return &resources{deps: d} },
		module.KindFocusTimer:          func(d Deps) module.Content { return newFocusTimer(d) },
		module.KindMusicPlayer:         func(d Deps) module.Content { return &music{deps: d} },
		module.KindProductivityHistory: func(d Deps) module.Content { return &history{deps: d} },
		module.KindStudySessions:       func(d Deps) module.Content { return &study{deps: d} },
	}
	for kind, build := range factories {
		build := build
		reg.Register(kind, func() (module.Content, error) {
			c := build(deps)
			if r, ok := c.(module.Refresher); ok {
				if err := r.Refresh(); err != nil {
					return nil, err
				}
			}
			return c, nil
		})
	}
}

// notes shows the note list above the selected note rendered as markdown.
type notes struct {
	deps  Deps
	items []records.Note
	sel   selection

	cacheKey string
	cache    string
}

func (n *notes) Title() string { return module.KindNotes.Title() }

func (n *notes) Refresh() error {
	n.items = n.deps.Records.Notes.List()
	n.sel.clamp(len(n.items))
	n.cacheKey = ""
	return nil
}

func (n *notes) HandleKey(key string) bool {
	return n.sel.handle(key, len(n.items))
}

func (n *notes) Render(width, height int) string {
	if len(n.items) == 0 {
		return clip(empty("notes"), width, height)
	}
	var lines []string
	listRows := min(len(n.items), max(height/3, 1))
	start := max(0, n.sel.index-listRows+1)
	for i := start; i < start+listRows && i < len(n.items); i++ {
		lines = append(lines, glyph.Cursor(i == n.sel.index)+" "+n.items[i].Title)
	}
	lines = append(lines, strings.Repeat("─", max(width, 1)))
	lines = append(lines, strings.Split(n.markdown(n.items[n.sel.index], width), "\n")...)
	return clip(lines, width, height)
}

func (n *notes) markdown(note records.Note, width int) string {
	key := fmt.Sprintf("%s/%d/%d", note.ID, width, len(note.Body))
	if key == n.cacheKey {
		return n.cache
	}
	body := strings.TrimSpace(note.Body)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(n.deps.Style),
		glamour.WithWordWrap(max(width-2, 10)),
	)
	if err == nil {
		if out, err := r.Render(body); err == nil {
			body = strings.Trim(out, "\n")
		}
	}
	n.cacheKey, n.cache = key, body
	return body
}

// goals lists goals with a progress bar each.
type goals struct {
	deps  Deps
	items []records.Goal
	sel   selection
}

func (g *goals) Title() string { return module.KindGoals.Title() }

func (g *goals) Refresh() error {
	g.items = g.deps.Records.Goals.List()
	g.sel.clamp(len(g.items))
	return nil
}

func (g *goals) HandleKey(key string) bool {
	if g.sel.handle(key, len(g.items)) {
		return true
	}
	if len(g.items) == 0 {
		return false
	}
	step := 0
	switch key {
	case "+", "=":
		step = 10
	case "-":
		step = -10
	default:
		return false
	}
	id := g.items[g.sel.index].ID
	if _, err := g.deps.Records.Goals.Update(id, func(goal *records.Goal) {
		goal.Progress = min(max(goal.Progress+step, 0), 100)
		goal.Completed = goal.Progress == 100
	}); err != nil {
		return false
	}
	_ = g.Refresh()
	return true
}

func (g *goals) Render(width, height int) string {
	if len(g.items) == 0 {
		return clip(empty("goals"), width, height)
	}
	barWidth := min(max(width-12, 4), 30)
	var lines []string
	for i, goal := range g.items {
		lines = append(lines,
			glyph.Cursor(i == g.sel.index)+" "+glyph.Check(goal.Completed)+" "+goal.Title,
			fmt.Sprintf("      %s %3d%%", bar(goal.Progress, barWidth), goal.Progress),
		)
	}
	return clip(lines, width, height)
}

// todos is a checklist; space toggles the selected item.
type todos struct {
	deps  Deps
	items []records.Todo
	sel   selection
}

func (t *todos) Title() string { return module.KindTodos.Title() }

func (t *todos) Refresh() error {
	t.items = t.deps.Records.Todos.List()
	t.sel.clamp(len(t.items))
	return nil
}

func (t *todos) HandleKey(key string) bool {
	if t.sel.handle(key, len(t.items)) {
		return true
	}
	if (key != "space" && key != " " && key != "enter") || len(t.items) == 0 {
		return false
	}
	id := t.items[t.sel.index].ID
	if _, err := t.deps.Records.Todos.Update(id, func(td *records.Todo) {
		td.Completed = !td.Completed
	}); err != nil {
		return false
	}
	_ = t.Refresh()
	return true
}

func (t *todos) Render(width, height int) string {
	if len(t.items) == 0 {
		return clip(empty("to-dos"), width, height)
	}
	open := 0
	lines := make([]string, 0, len(t.items)+2)
	for i, td := range t.items {
		if !td.Completed {
			open++
		}
		line := glyph.Cursor(i == t.sel.index) + " " + glyph.Check(td.Completed) + " " + td.Text
		if td.Priority != "" {
			line += " (" + td.Priority + ")"
		}
		lines = append(lines, line)
	}
	lines = append([]string{fmt.Sprintf("%d open, %d done", open, len(t.items)-open), ""}, lines...)
	return clip(lines, width, height)
}

// resources lists saved links.
type resources struct {
	deps  Deps
	items []records.Resource
	sel   selection
}

func (r *resources) Title() string { return module.KindResources.Title() }

func (r *resources) Refresh() error {
	r.items = r.deps.Records.Resources.List()
	r.sel.clamp(len(r.items))
	return nil
}

func (r *resources) HandleKey(key string) bool {
	return r.sel.handle(key, len(r.items))
}

func (r *resources) Render(width, height int) string {
	if len(r.items) == 0 {
		return clip(empty("resources"), width, height)
	}
	var lines []string
	for i, res := range r.items {
		line := glyph.Cursor(i == r.sel.index) + " " + res.Title
		if res.Category != "" {
			line += " [" + res.Category + "]"
		}
		lines = append(lines, line)
		if res.URL != "" && res.URL != res.Title {
			lines = append(lines, "    "+res.URL)
		}
	}
	return clip(lines, width, height)
}

// journal shows the most recent entries first.
type journal struct {
	deps  Deps
	items []records.JournalEntry
}

func (j *journal) Title() string { return module.KindJournal.Title() }

func (j *journal) Refresh() error {
	j.items = j.deps.Records.Journal.List()
	return nil
}

func (j *journal) Render(width, height int) string {
	if len(j.items) == 0 {
		return clip(empty("journal entries"), width, height)
	}
	var lines []string
	for i := len(j.items) - 1; i >= 0; i-- {
		e := j.items[i]
		head := e.Summary().Title
		if e.Mood > 0 || e.Productivity > 0 {
			head += fmt.Sprintf("  mood %d/5  productivity %d/10", e.Mood, e.Productivity)
		}
		lines = append(lines, head)
		for _, text := range []string{e.Accomplished, e.Reflection} {
			if text != "" {
				lines = append(lines, wrap("  "+text, width)...)
			}
		}
		lines = append(lines, "")
	}
	return clip(lines, width, height)
}

// history summarises productivity across the journal and task lists.
type history struct {
	deps  Deps
	stats records.Stats
	now   time.Time
	days  []int
}

func (h *history) Title() string { return module.KindProductivityHistory.Title() }

func (h *history) Refresh() error {
	h.now = h.deps.Now()
	h.stats = h.deps.Records.Stats(h.now.AddDate(0, 0, -7))
	h.days = records.DayCounts(h.now, h.deps.Records.Journal.List()...)
	return nil
}

func (h *history) Render(width, height int) string {
	st := h.stats
	avg := "n/a"
	if st.AvgProductivity > 0 {
		avg = fmt.Sprintf("%.1f/10", st.AvgProductivity)
	}
	lines := []string{
		fmt.Sprintf("Journal entries    %d (%d this week)", st.Entries, st.Recent),
		fmt.Sprintf("Avg productivity   %s", avg),
		fmt.Sprintf("To-dos completed   %d/%d", st.TodosDone, st.Todos),
		fmt.Sprintf("Goals completed    %d/%d", st.GoalsDone, st.Goals),
		fmt.Sprintf("Time studied       %s", st.Studied.Round(time.Minute)),
	}
	if st.Todos > 0 {
		lines = append(lines, "", bar(st.TodosDone*100/st.Todos, min(max(width-2, 4), 40)))
	}
	if width >= calendar.Width && height > len(lines)+3 {
		grid := calendar.Render(h.now, calendar.Days(h.now, h.days), calendar.DefaultOptions())
		lines = append(lines, "")
		lines = append(lines, strings.Split(grid, "\n")...)
	}
	return clip(lines, width, height)
}

// study lists study sessions with their total.
type study struct {
	deps  Deps
	items []records.StudySession
	sel   selection
}

func (s *study) Title() string { return module.KindStudySessions.Title() }

func (s *study) Refresh() error {
	s.items = s.deps.Records.StudySessions.List()
	s.sel.clamp(len(s.items))
	return nil
}

func (s *study) HandleKey(key string) bool {
	return s.sel.handle(key, len(s.items))
}

func (s *study) Render(width, height int) string {
	if len(s.items) == 0 {
		return clip(empty("study sessions"), width, height)
	}
	var total time.Duration
	var lines []string
	for i, st := range s.items {
		if st.Completed {
			total += st.Duration
		}
		sum := st.Summary()
		lines = append(lines, fmt.Sprintf("%s %s %s  %s", glyph.Cursor(i == s.sel.index), glyph.Check(st.Completed), sum.Title, sum.Detail))
	}
	lines = append([]string{"Total " + total.Round(time.Minute).String(), ""}, lines...)
	return clip(lines, width, height)
}

// music is a playlist with a play queue. There is no audio output.
type music struct {
	deps    Deps
	songs   []records.Song
	queue   []records.Song
	sel     selection
	playing string
}

func (m *music) Title() string { return module.KindMusicPlayer.Title() }

func (m *music) Refresh() error {
	m.songs = m.deps.Records.Songs.List()
	m.queue = m.deps.Records.Queue.List()
	m.sel.clamp(len(m.songs))
	return nil
}

func (m *music) HandleKey(key string) bool {
	if m.sel.handle(key, len(m.songs)) {
		return true
	}
	switch key {
	case "enter":
		if len(m.songs) > 0 {
			m.playing = m.songs[m.sel.index].Title
			return true
		}
	case "a":
		if len(m.songs) > 0 {
			song := m.songs[m.sel.index]
			song.ID = ""
			if _, err := m.deps.Records.Queue.Add(song); err == nil {
				_ = m.Refresh()
				return true
			}
		}
	case "n":
		if len(m.queue) > 0 {
			next := m.queue[0]
			if err := m.deps.Records.Queue.Delete(next.ID); err == nil {
				m.playing = next.Title
				_ = m.Refresh()
				return true
			}
		}
	}
	return false
}

func (m *music) Render(width, height int) string {
	playing := m.playing
	if playing == "" {
		playing = "nothing"
	}
	lines := []string{"♪ Now playing: " + playing, ""}
	if len(m.songs) == 0 {
		lines = append(lines, empty("songs")...)
	}
	for i, s := range m.songs {
		line := glyph.Cursor(i == m.sel.index) + " " + s.Title
		if s.Artist != "" {
			line += " - " + s.Artist
		}
		lines = append(lines, line)
	}
	if len(m.queue) > 0 {
		lines = append(lines, "", fmt.Sprintf("Up next (%d):", len(m.queue)))
		for _, s := range m.queue {
			lines = append(lines, "  "+s.Title)
		}
	}
	return clip(lines, width, height)
}

// focusTimer drives a focus.Timer and logs finished focus phases as study
// sessions.
type focusTimer struct {
	deps  Deps
	timer *focus.Timer
}

func newFocusTimer(d Deps) *focusTimer {
	return &focusTimer{deps: d, timer: focus.New(focus.DefaultFocus, focus.DefaultBreak)}
}

func (f *focusTimer) Title() string { return module.KindFocusTimer.Title() }

func (f *focusTimer) HandleKey(key string) bool {
	now := f.deps.Now()
	switch key {
	case "space", " ", "enter":
		f.timer.Toggle(now)
	case "r":
		f.timer.Reset()
	case "s":
		f.timer.Advance()
	default:
		return false
	}
	return true
}

// Tick completes the current phase once it has run out. It reports whether
// the phase changed.
func (f *focusTimer) Tick() bool {
	now := f.deps.Now()
	if !f.timer.Running() || !f.timer.Done(now) {
		return false
	}
	if f.timer.Advance() == focus.PhaseFocus {
		_, _ = f.deps.Records.StudySessions.Add(records.StudySession{
			Subject:   "Focus",
			Start:     now.Add(-f.timer.Focus).UTC(),
			Duration:  f.timer.Focus,
			Completed: true,
		})
	}
	return true
}

func (f *focusTimer) Render(width, height int) string {
	now := f.deps.Now()
	state := "paused"
	if f.timer.Running() {
		state = "running"
	}
	lines := []string{
		strings.ToUpper(f.timer.Phase().String()),
		"",
		"  " + focus.Format(f.timer.Remaining(now)),
		"",
		bar(int(f.timer.Elapsed(now)*100/f.timer.Length()), min(max(width-2, 4), 40)),
		"",
		state + " · space start/pause · r reset · s skip",
	}
	return clip(lines, width, height)
}
