// Package mcp provides the Model Context Protocol server integration for deck.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/timeutil"
)

// Service coordinates record operations that are shared by the MCP server.
type Service struct {
	Records *records.Set
	Now     func() time.Time
}

// ErrRecordNotFound is returned when no collection holds the requested id.
var ErrRecordNotFound = errors.New("record not found")

// CollectionSummary describes a collection and basic aggregate metadata.
type CollectionSummary struct {
	Name         string `json:"name"`
	RecordCount  int    `json:"recordCount"`
	OpenCount    int    `json:"openCount"`
	LastUpdated  string `json:"lastUpdated,omitempty"`
	LatestTitle  string `json:"latestTitle,omitempty"`
	SupportsDone bool   `json:"supportsDone"`
}

// RecordDTO is a transport-friendly projection of a record.
type RecordDTO struct {
	ID          string `json:"id"`
	Collection  string `json:"collection"`
	Title       string `json:"title"`
	Detail      string `json:"detail,omitempty"`
	Done        bool   `json:"done"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// ModuleDTO describes a window kind.
type ModuleDTO struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// NewService builds a service over the provided record set.
func NewService(s *records.Set) *Service {
	return &Service{Records: s, Now: time.Now}
}

func (s *Service) book(name string) (records.Book, error) {
	if s.Records == nil {
		return nil, errors.New("records are not configured")
	}
	if name == "" {
		return nil, errors.New("collection is required")
	}
	return s.Records.Book(name)
}

// ListCollections returns summaries for every collection.
func (s *Service) ListCollections(ctx context.Context) ([]CollectionSummary, error) {
	if s.Records == nil {
		return nil, errors.New("records are not configured")
	}

	names := s.Records.Books()
	summaries := make([]CollectionSummary, 0, len(names))
	for _, name := range names {
		b, err := s.Records.Book(name)
		if err != nil {
			return nil, err
		}
		all := b.Summaries()
		cs := CollectionSummary{Name: name, RecordCount: len(all), SupportsDone: b.Completable()}
		if len(all) == 0 {
			summaries = append(summaries, cs)
			continue
		}
		sortSummaries(all)
		for _, r := range all {
			if !r.Done {
				cs.OpenCount++
			}
		}
		last := all[len(all)-1]
		cs.LastUpdated = formatTime(last.Created)
		cs.LatestTitle = last.Title
		summaries = append(summaries, cs)
	}
	return summaries, nil
}

// ListRecords gathers the records of one collection.
func (s *Service) ListRecords(ctx context.Context, collection string) ([]RecordDTO, error) {
	b, err := s.book(collection)
	if err != nil {
		return nil, err
	}
	all := b.Summaries()
	sortSummaries(all)
	return toDTOs(b.Key(), all), nil
}

// ListAllRecords returns every record of every collection.
func (s *Service) ListAllRecords(ctx context.Context) ([]RecordDTO, error) {
	if s.Records == nil {
		return nil, errors.New("records are not configured")
	}
	var out []RecordDTO
	for _, name := range s.Records.Books() {
		dtos, err := s.ListRecords(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, dtos...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedUnix < out[j].CreatedUnix
	})
	return out, nil
}

// AddRecord appends text to a collection.
func (s *Service) AddRecord(ctx context.Context, collection, text string) (*RecordDTO, error) {
	b, err := s.book(collection)
	if err != nil {
		return nil, err
	}
	sum, err := b.AddText(text)
	if err != nil {
		return nil, err
	}
	dto := toDTO(b.Key(), sum)
	return &dto, nil
}

// CompleteRecord marks a record as done.
func (s *Service) CompleteRecord(ctx context.Context, collection, id string) (*RecordDTO, error) {
	b, err := s.locate(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	sum, err := b.Complete(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(b.Key(), sum)
	return &dto, nil
}

// RemoveRecord deletes a record.
func (s *Service) RemoveRecord(ctx context.Context, collection, id string) (*RecordDTO, error) {
	b, err := s.locate(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	dto, err := s.RecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.Remove(id); err != nil {
		return nil, err
	}
	return dto, nil
}

// SearchRecords performs a substring match across titles and details.
func (s *Service) SearchRecords(ctx context.Context, query string, limit int) ([]RecordDTO, error) {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []RecordDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	all, err := s.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]RecordDTO, 0, limit)
	for _, r := range all {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Detail), q) {
			results = append(results, r)
		}
	}
	return results, nil
}

// RecordByID locates a record in any collection.
func (s *Service) RecordByID(ctx context.Context, id string) (*RecordDTO, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	all, err := s.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// ListModules returns the window kinds in display order.
func (s *Service) ListModules(ctx context.Context) []ModuleDTO {
	kinds := module.Kinds()
	out := make([]ModuleDTO, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, ModuleDTO{Kind: string(k), Title: k.Title()})
	}
	return out
}

// Stats totals the record lists. Recent counts the entries created within
// window, such as "3d"; an empty window means one week.
func (s *Service) Stats(ctx context.Context, window string) (records.Stats, error) {
	if s.Records == nil {
		return records.Stats{}, errors.New("records are not configured")
	}
	since, _, err := timeutil.ParseWindow(window)
	if err != nil {
		return records.Stats{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Records.Stats(now().Add(-since)), nil
}

// locate returns the collection holding id, searching every collection
// when none is named.
func (s *Service) locate(ctx context.Context, collection, id string) (records.Book, error) {
	if collection != "" {
		return s.book(collection)
	}
	dto, err := s.RecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.book(dto.Collection)
}

func sortSummaries(all []records.Summary) {
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].Created, all[j].Created
		if !a.Equal(b) {
			return a.Before(b)
		}
		return strings.ToLower(all[i].ID) < strings.ToLower(all[j].ID)
	})
}

func toDTOs(collection string, all []records.Summary) []RecordDTO {
	out := make([]RecordDTO, 0, len(all))
	for _, r := range all {
		out = append(out, toDTO(collection, r))
	}
	return out
}

func toDTO(collection string, r records.Summary) RecordDTO {
	return RecordDTO{
		ID:          r.ID,
		Collection:  collection,
		Title:       r.Title,
		Detail:      r.Detail,
		Done:        r.Done,
		CreatedISO:  formatTime(r.Created),
		CreatedUnix: r.Created.Unix(),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
