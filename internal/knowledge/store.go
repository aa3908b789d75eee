package knowledge

import (
	"fmt"
	"sync"
)

// Store holds all knowledge entries. Reads take a shared lock and return
// copies, so concurrent request processing never observes a partial write.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[int]Entry
	nextID  int
}

// SubjectSummary describes one subject for the subjects listing.
type SubjectSummary struct {
	Subject     Subject  `json:"subject"`
	Name        string   `json:"name"`
	TopicsCount int      `json:"topics_count"`
	Topics      []string `json:"topics"`
}

func NewStore(entries []Entry) *Store {
	s := &Store{
		byID: make(map[int]Entry, len(entries)),
	}
	for _, e := range entries {
		s.entries = append(s.entries, e)
		s.byID[e.ID] = e
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
	return s
}

// All returns a snapshot of every entry in load order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subjects returns the subjects that currently have entries, in the pinned
// subject order.
func (s *Store) Subjects() []Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	present := make(map[Subject]bool, len(s.entries))
	for _, e := range s.entries {
		present[e.Subject] = true
	}

	var subjects []Subject
	for _, subject := range SubjectOrder {
		if present[subject] {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

func (s *Store) EntriesFor(subject Subject) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.entries {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) EntryByID(id int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	return e, ok
}

// Summary lists every subject with its topics, for the subjects endpoint.
func (s *Store) Summary() []SubjectSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bySubject := make(map[Subject][]string)
	for _, e := range s.entries {
		bySubject[e.Subject] = append(bySubject[e.Subject], e.Topic)
	}

	var out []SubjectSummary
	for _, subject := range SubjectOrder {
		topics, ok := bySubject[subject]
		if !ok {
			continue
		}
		out = append(out, SubjectSummary{
			Subject:     subject,
			Name:        subject.DisplayName(),
			TopicsCount: len(topics),
			Topics:      topics,
		})
	}
	return out
}

// AddEntry appends a new entry and assigns its ID. The caller is
// responsible for rebuilding the retrieval index afterwards.
func (s *Store) AddEntry(e Entry) (Entry, error) {
	if !e.Subject.Valid() {
		return Entry{}, fmt.Errorf("unknown subject %q", e.Subject)
	}
	if e.Topic == "" || e.Content == "" {
		return Entry{}, fmt.Errorf("topic and content are required")
	}
	if e.Difficulty == "" {
		e.Difficulty = DifficultyBasic
	}
	if !e.Difficulty.Valid() {
		return Entry{}, fmt.Errorf("unknown difficulty %q", e.Difficulty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, e)
	s.byID[e.ID] = e
	return e, nil
}
