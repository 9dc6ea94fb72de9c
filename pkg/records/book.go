package records

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/deck/pkg/store"
)

// ErrUnknownBook is returned for a name that matches no collection.
var ErrUnknownBook = errors.New("records: unknown collection")

// ErrNotCompletable is returned when completing a record that has no done
// state.
var ErrNotCompletable = errors.New("records: cannot be completed")

// Book is a collection reached by name from the CLI and MCP tools.
type Book interface {
	Key() string
	Summaries() []Summary
	AddText(text string) (Summary, error)
	Complete(id string) (Summary, error)
	// Completable reports whether records in the book have a done state.
	Completable() bool
	Remove(id string) error
}

type book[T any, P Record[T]] struct {
	*Collection[T, P]
	fromText func(string) T
	complete func(P)
}

func (b *book[T, P]) AddText(text string) (Summary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Summary{}, errors.New("records: text required")
	}
	v, err := b.Add(b.fromText(text))
	if err != nil {
		return Summary{}, err
	}
	return P(&v).Summary(), nil
}

func (b *book[T, P]) Complete(id string) (Summary, error) {
	if b.complete == nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrNotCompletable, b.Key())
	}
	v, err := b.Update(id, b.complete)
	if err != nil {
		return Summary{}, err
	}
	return P(&v).Summary(), nil
}

func (b *book[T, P]) Completable() bool {
	return b.complete != nil
}

func (b *book[T, P]) Remove(id string) error {
	return b.Delete(id)
}

// Set opens every collection over one blob store.
type Set struct {
	Notes         *Collection[Note, *Note]
	Goals         *Collection[Goal, *Goal]
	SavedGoals    *Collection[Goal, *Goal]
	Todos         *Collection[Todo, *Todo]
	Resources     *Collection[Resource, *Resource]
	Journal       *Collection[JournalEntry, *JournalEntry]
	StudySessions *Collection[StudySession, *StudySession]
	Songs         *Collection[Song, *Song]
	Queue         *Collection[Song, *Song]

	books   map[string]Book
	aliases map[string]string
}

// Open returns the collections stored in b.
func Open(b store.Blobs) *Set {
	s := &Set{
		Notes:         NewCollection[Note](b, KeyNotes),
		Goals:         NewCollection[Goal](b, KeyGoals),
		SavedGoals:    NewCollection[Goal](b, KeySavedGoals),
		Todos:         NewCollection[Todo](b, KeyTodos),
		Resources:     NewCollection[Resource](b, KeyResources),
		Journal:       NewCollection[JournalEntry](b, KeyProductivityEntries),
		StudySessions: NewCollection[StudySession](b, KeyStudySessions),
		Songs:         NewCollection[Song](b, KeySongs),
		Queue:         NewCollection[Song](b, KeyQueue),
	}
	s.books = map[string]Book{
		KeyNotes: &book[Note, *Note]{
			Collection: s.Notes,
			fromText: func(text string) Note {
				return Note{Title: firstLine(text), Body: text}
			},
		},
		KeyGoals: &book[Goal, *Goal]{
			Collection: s.Goals,
			fromText:   func(text string) Goal { return Goal{Title: text} },
			complete: func(g *Goal) {
				g.Completed = true
				g.Progress = 100
			},
		},
		KeyTodos: &book[Todo, *Todo]{
			Collection: s.Todos,
			fromText:   func(text string) Todo { return Todo{Text: text} },
			complete:   func(t *Todo) { t.Completed = true },
		},
		KeyResources: &book[Resource, *Resource]{
			Collection: s.Resources,
			fromText: func(text string) Resource {
				r := Resource{Title: text}
				if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
					r.URL = text
				}
				return r
			},
		},
		KeyProductivityEntries: &book[JournalEntry, *JournalEntry]{
			Collection: s.Journal,
			fromText: func(text string) JournalEntry {
				return JournalEntry{Date: s.Journal.now().Format("2006-01-02"), Accomplished: text}
			},
		},
		KeyStudySessions: &book[StudySession, *StudySession]{
			Collection: s.StudySessions,
			fromText:   func(text string) StudySession { return StudySession{Subject: text} },
			complete:   func(st *StudySession) { st.Completed = true },
		},
		KeySongs: &book[Song, *Song]{
			Collection: s.Songs,
			fromText:   func(text string) Song { return Song{Title: text} },
		},
	}
	s.aliases = map[string]string{
		"note":     KeyNotes,
		"goal":     KeyGoals,
		"todo":     KeyTodos,
		"task":     KeyTodos,
		"resource": KeyResources,
		"link":     KeyResources,
		"journal":  KeyProductivityEntries,
		"entry":    KeyProductivityEntries,
		"study":    KeyStudySessions,
		"session":  KeyStudySessions,
		"song":     KeySongs,
		"music":    KeySongs,
	}
	return s
}

// Book returns the collection named by key or a singular alias.
func (s *Set) Book(name string) (Book, error) {
	if b, ok := s.books[name]; ok {
		return b, nil
	}
	if key, ok := s.aliases[strings.ToLower(name)]; ok {
		return s.books[key], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBook, name)
}

// Books returns the names accepted by Book, sorted.
func (s *Set) Books() []string {
	names := make([]string, 0, len(s.books))
	for k := range s.books {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
