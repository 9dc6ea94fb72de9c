// Command demo seeds the configured store with sample records.
package main

import (
	"fmt"
	"time"

	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
)

func main() {
	b, err := store.Load(nil)
	if err != nil {
		panic(err)
	}
	s := records.Open(b)
	now := time.Now()

	steps := []func() error{
		func() error {
			_, err := s.Notes.Add(records.Note{Title: "Welcome", Body: "# Welcome\n\nPress `ctrl+n` to open a window and `?` for help."})
			return err
		},
		func() error {
			_, err := s.Goals.Add(records.Goal{Title: "Read 12 books", Category: "personal", Progress: 25})
			return err
		},
		func() error {
			_, err := s.Todos.Add(records.Todo{Text: "Try fullscreen with f", Priority: "high"})
			return err
		},
		func() error {
			_, err := s.Todos.Add(records.Todo{Text: "Minimize a window with m", Completed: true})
			return err
		},
		func() error {
			_, err := s.Resources.Add(records.Resource{Title: "Go documentation", URL: "https://go.dev/doc/"})
			return err
		},
		func() error {
			_, err := s.Journal.Add(records.JournalEntry{Date: now.Format("2006-01-02"), Mood: 7, Productivity: 8, Accomplished: "Set up deck"})
			return err
		},
		func() error {
			_, err := s.StudySessions.Add(records.StudySession{Subject: "Go generics", Start: now.Add(-time.Hour), Duration: 25 * time.Minute, Completed: true})
			return err
		},
		func() error {
			_, err := s.Songs.Add(records.Song{Title: "Clair de Lune", Artist: "Debussy"})
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			panic(err)
		}
	}

	for _, name := range s.Books() {
		book, _ := s.Book(name)
		fmt.Printf("%s: %d\n", name, len(book.Summaries()))
	}
}
