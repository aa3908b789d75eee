package knowledge

import (
	"reflect"
	"testing"
)

func TestNewStoreLoadsSeed(t *testing.T) {
	s := NewStore(SeedEntries())

	if s.Count() != 12 {
		t.Errorf("Count = %d, want 12", s.Count())
	}

	if !reflect.DeepEqual(s.Subjects(), SubjectOrder) {
		t.Errorf("Subjects = %v, want full subject order", s.Subjects())
	}
}

func TestEntryByID(t *testing.T) {
	s := NewStore(SeedEntries())

	e, ok := s.EntryByID(2)
	if !ok {
		t.Fatal("entry 2 not found")
	}
	if e.Topic != "Teorema de Pitágoras" {
		t.Errorf("entry 2 topic = %q", e.Topic)
	}

	if _, ok := s.EntryByID(999); ok {
		t.Error("entry 999 should not exist")
	}
}

func TestEntriesFor(t *testing.T) {
	s := NewStore(SeedEntries())

	math := s.EntriesFor(SubjectMathematics)
	if len(math) != 3 {
		t.Errorf("mathematics entries = %d, want 3", len(math))
	}
	for _, e := range math {
		if e.Subject != SubjectMathematics {
			t.Errorf("entry %d has subject %q", e.ID, e.Subject)
		}
	}

	if got := s.EntriesFor(SubjectGeneral); len(got) != 0 {
		t.Errorf("general entries = %v, want none", got)
	}
}

func TestSummary(t *testing.T) {
	s := NewStore(SeedEntries())

	summary := s.Summary()
	if len(summary) != len(SubjectOrder) {
		t.Fatalf("summary has %d subjects, want %d", len(summary), len(SubjectOrder))
	}

	first := summary[0]
	if first.Subject != SubjectMathematics {
		t.Errorf("first summary subject = %q, want matematicas", first.Subject)
	}
	if first.Name != "Matematicas" {
		t.Errorf("first summary name = %q, want Matematicas", first.Name)
	}
	if first.TopicsCount != 3 || len(first.Topics) != 3 {
		t.Errorf("mathematics topics = %d/%d, want 3", first.TopicsCount, len(first.Topics))
	}
}

func TestAddEntry(t *testing.T) {
	s := NewStore(SeedEntries())

	added, err := s.AddEntry(Entry{
		Subject:  SubjectPhysics,
		Topic:    "Ondas",
		Content:  "Una onda transporta energía sin transportar materia.",
		Keywords: []string{"onda", "frecuencia"},
	})
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if added.ID != 13 {
		t.Errorf("assigned ID = %d, want 13", added.ID)
	}
	if added.Difficulty != DifficultyBasic {
		t.Errorf("default difficulty = %q, want basic", added.Difficulty)
	}
	if s.Count() != 13 {
		t.Errorf("Count after add = %d, want 13", s.Count())
	}

	got, ok := s.EntryByID(13)
	if !ok || got.Topic != "Ondas" {
		t.Errorf("EntryByID(13) = %+v, ok=%v", got, ok)
	}
}

func TestAddEntryValidation(t *testing.T) {
	s := NewStore(SeedEntries())

	tests := []struct {
		name  string
		entry Entry
	}{
		{
			name:  "unknown subject",
			entry: Entry{Subject: "astronomia", Topic: "t", Content: "c"},
		},
		{
			name:  "general subject rejected",
			entry: Entry{Subject: SubjectGeneral, Topic: "t", Content: "c"},
		},
		{
			name:  "missing topic",
			entry: Entry{Subject: SubjectPhysics, Content: "c"},
		},
		{
			name:  "missing content",
			entry: Entry{Subject: SubjectPhysics, Topic: "t"},
		},
		{
			name:  "unknown difficulty",
			entry: Entry{Subject: SubjectPhysics, Topic: "t", Content: "c", Difficulty: "imposible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddEntry(tt.entry); err == nil {
				t.Errorf("AddEntry(%+v) succeeded, want error", tt.entry)
			}
		})
	}

	if s.Count() != 12 {
		t.Errorf("Count after rejected adds = %d, want 12", s.Count())
	}
}

func TestKeywordSetLowercases(t *testing.T) {
	e := Entry{Keywords: []string{"Newton", "FUERZA", "newton"}}

	set := e.KeywordSet()
	if len(set) != 2 {
		t.Errorf("KeywordSet size = %d, want 2", len(set))
	}
	if _, ok := set["newton"]; !ok {
		t.Error("KeywordSet missing lowercased newton")
	}
}

func TestSubjectDisplayName(t *testing.T) {
	if got := SubjectMathematics.DisplayName(); got != "Matematicas" {
		t.Errorf("DisplayName = %q, want Matematicas", got)
	}
	if got := Subject("").DisplayName(); got != "" {
		t.Errorf("empty DisplayName = %q, want empty", got)
	}
}
