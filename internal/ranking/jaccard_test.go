package ranking

import (
	"math"
	"testing"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "identical sets",
			a:    []string{"celula", "nucleo"},
			b:    []string{"celula", "nucleo"},
			want: 1.0,
		},
		{
			name: "half overlap",
			a:    []string{"a", "b", "c"},
			b:    []string{"b", "c", "d"},
			want: 0.5,
		},
		{
			name: "no overlap",
			a:    []string{"fuerza"},
			b:    []string{"celula"},
			want: 0.0,
		},
		{
			name: "empty first",
			a:    nil,
			b:    []string{"celula"},
			want: 0.0,
		},
		{
			name: "empty both",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
		{
			name: "duplicates collapse",
			a:    []string{"celula", "celula"},
			b:    []string{"celula"},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Jaccard(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := []string{"ecuacion", "lineal", "variable"}
	b := []string{"lineal", "parabola"}

	if Jaccard(a, b) != Jaccard(b, a) {
		t.Errorf("Jaccard not symmetric: %v vs %v", Jaccard(a, b), Jaccard(b, a))
	}
}

func keywordTestEntries() []knowledge.Entry {
	return []knowledge.Entry{
		{
			ID:       1,
			Subject:  knowledge.SubjectMathematics,
			Topic:    "Ecuaciones lineales",
			Keywords: []string{"ecuacion", "lineal", "variable"},
		},
		{
			ID:       2,
			Subject:  knowledge.SubjectMathematics,
			Topic:    "Funciones cuadráticas",
			Keywords: []string{"funcion", "cuadratica", "parabola"},
		},
		{
			ID:       3,
			Subject:  knowledge.SubjectPhysics,
			Topic:    "Leyes de Newton",
			Keywords: []string{"newton", "fuerza", "ecuacion"},
		},
	}
}

func TestKeywordOverlapRank(t *testing.T) {
	s := NewKeywordOverlapStrategy(keywordTestEntries())

	q := nlp.ProcessedQuestion{
		Subject:  knowledge.SubjectMathematics,
		Keywords: []string{"ecuacion", "lineal"},
	}

	matches := s.Rank(q, 3)
	if len(matches) != 2 {
		t.Fatalf("Rank returned %d matches, want 2", len(matches))
	}

	if matches[0].Entry.ID != 1 {
		t.Errorf("top match = entry %d, want 1", matches[0].Entry.ID)
	}

	// entry 1 shares two of three keywords with the query set of two
	wantTop := 2.0 / 3.0
	if math.Abs(matches[0].Score-wantTop) > 1e-9 {
		t.Errorf("top score = %v, want %v", matches[0].Score, wantTop)
	}

	// entry 3 shares one keyword but sits in another subject
	wantCross := (1.0 / 4.0) * 0.7
	if matches[1].Entry.ID != 3 {
		t.Errorf("second match = entry %d, want 3", matches[1].Entry.ID)
	}
	if math.Abs(matches[1].Score-wantCross) > 1e-9 {
		t.Errorf("cross-subject score = %v, want %v", matches[1].Score, wantCross)
	}
}

func TestKeywordOverlapSameSubjectFillsFirst(t *testing.T) {
	entries := []knowledge.Entry{
		{ID: 1, Subject: knowledge.SubjectMathematics, Keywords: []string{"ecuacion"}},
		{ID: 2, Subject: knowledge.SubjectPhysics, Keywords: []string{"ecuacion"}},
	}
	s := NewKeywordOverlapStrategy(entries)

	q := nlp.ProcessedQuestion{
		Subject:  knowledge.SubjectMathematics,
		Keywords: []string{"ecuacion"},
	}

	matches := s.Rank(q, 1)
	if len(matches) != 1 {
		t.Fatalf("Rank returned %d matches, want 1", len(matches))
	}
	if matches[0].Entry.ID != 1 {
		t.Errorf("top match = entry %d, want same-subject entry 1", matches[0].Entry.ID)
	}
}

func TestKeywordOverlapNoKeywords(t *testing.T) {
	s := NewKeywordOverlapStrategy(keywordTestEntries())

	q := nlp.ProcessedQuestion{Subject: knowledge.SubjectMathematics}
	if matches := s.Rank(q, 3); len(matches) != 0 {
		t.Errorf("Rank with no query keywords = %v, want none", matches)
	}
}

func TestKeywordOverlapRebuild(t *testing.T) {
	s := NewKeywordOverlapStrategy(keywordTestEntries()[:1])

	q := nlp.ProcessedQuestion{
		Subject:  knowledge.SubjectMathematics,
		Keywords: []string{"parabola"},
	}
	if matches := s.Rank(q, 3); len(matches) != 0 {
		t.Fatalf("unexpected matches before rebuild: %v", matches)
	}

	s.Rebuild(keywordTestEntries())
	matches := s.Rank(q, 3)
	if len(matches) != 1 || matches[0].Entry.ID != 2 {
		t.Errorf("Rank after Rebuild = %v, want entry 2", matches)
	}
}
