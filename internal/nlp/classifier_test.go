package nlp

import (
	"strings"
	"testing"

	"github.com/edu-assistant/backend/internal/knowledge"
)

func TestDetectSubject(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
		want       knowledge.Subject
	}{
		{
			name:       "mathematics by keyword",
			normalized: "que es el teorema de pitagoras",
			want:       knowledge.SubjectMathematics,
		},
		{
			name:       "physics by multiple keywords",
			normalized: "como calcular la fuerza y la aceleracion de un objeto",
			want:       knowledge.SubjectPhysics,
		},
		{
			name:       "chemistry",
			normalized: "que es un enlace covalente",
			want:       knowledge.SubjectChemistry,
		},
		{
			name:       "biology",
			normalized: "explica la fotosintesis en la celula",
			want:       knowledge.SubjectBiology,
		},
		{
			name:       "history",
			normalized: "causas de la revolucion industrial en el siglo xviii",
			want:       knowledge.SubjectHistory,
		},
		{
			name:       "geography",
			normalized: "que son la latitud y la longitud",
			want:       knowledge.SubjectGeography,
		},
		{
			name:       "language",
			normalized: "diferencia entre sujeto y predicado en una oracion",
			want:       knowledge.SubjectLanguage,
		},
		{
			name:       "no signal yields general",
			normalized: "hola buenos dias",
			want:       knowledge.SubjectGeneral,
		},
		{
			name:       "keyword inside longer word still scores",
			normalized: "dibuja un paralelogramo",
			want:       knowledge.SubjectGeography,
		},
		{
			name:       "empty text",
			normalized: "",
			want:       knowledge.SubjectGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSubject(tt.normalized)
			if got != tt.want {
				t.Errorf("DetectSubject(%q) = %q, want %q", tt.normalized, got, tt.want)
			}
		})
	}
}

// A tie between two subjects resolves to the one listed first in
// knowledge.SubjectOrder.
func TestDetectSubjectTieBreak(t *testing.T) {
	// "molecula" appears in both the physics and chemistry keyword lists,
	// scoring one for each; physics precedes chemistry in the order.
	got := DetectSubject("dibuja una molecula")
	if got != knowledge.SubjectPhysics {
		t.Errorf("DetectSubject tie = %q, want %q", got, knowledge.SubjectPhysics)
	}
}

// Every subject keyword on its own must classify to its subject unless
// another subject's list claims it with a higher score. This guards the
// keyword table against entries that can never win.
func TestDetectSubjectKeywordsReachable(t *testing.T) {
	for _, subject := range knowledge.SubjectOrder {
		covered := false
		for _, keyword := range SubjectKeywords(subject) {
			if DetectSubject(keyword) == subject {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("no keyword of subject %q classifies to it", subject)
		}
	}
}

func TestClassifyQuestionType(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
		want       QuestionType
	}{
		{"definition", "que es la fotosintesis", TypeDefinition},
		{"definition via concepto", "explícame el concepto de inercia", TypeDefinition},
		{"explanation", "como funciona la gravedad", TypeExplanation},
		{"calculation", "calcula el area del triangulo", TypeCalculation},
		{"comparison", "diferencia de acidos y bases", TypeComparison},
		{"example", "dame un ejemplo de mutacion", TypeExample},
		{"procedure", "pasos del analisis sintactico", TypeProcedure},
		{"no pattern", "la celula", TypeGeneral},
		{"empty", "", TypeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyQuestionType(tt.normalized)
			if got != tt.want {
				t.Errorf("ClassifyQuestionType(%q) = %q, want %q", tt.normalized, got, tt.want)
			}
		})
	}
}

// Pattern groups form a precedence chain: the earliest matching group
// wins even when later groups also match.
func TestClassifyQuestionTypePrecedence(t *testing.T) {
	got := ClassifyQuestionType("que es lo que calcula esta formula")
	if got != TypeDefinition {
		t.Errorf("ClassifyQuestionType precedence = %q, want %q", got, TypeDefinition)
	}

	got = ClassifyQuestionType("como se compara la energia cinetica")
	if got != TypeExplanation {
		t.Errorf("ClassifyQuestionType precedence = %q, want %q", got, TypeExplanation)
	}
}

func TestProcess(t *testing.T) {
	p := NewProcessor()
	result := p.Process("¿Que es el Teorema de Pitagoras?")

	if result.Original != "¿Que es el Teorema de Pitagoras?" {
		t.Errorf("Original = %q, want the raw question", result.Original)
	}
	if result.Normalized != "¿que es el teorema de pitagoras?" {
		t.Errorf("Normalized = %q", result.Normalized)
	}
	if result.Subject != knowledge.SubjectMathematics {
		t.Errorf("Subject = %q, want %q", result.Subject, knowledge.SubjectMathematics)
	}
	if result.QuestionType != TypeDefinition {
		t.Errorf("QuestionType = %q, want %q", result.QuestionType, TypeDefinition)
	}

	joined := strings.Join(result.Keywords, " ")
	if !strings.Contains(joined, "teorema") || !strings.Contains(joined, "pitagoras") {
		t.Errorf("Keywords = %v, want teorema and pitagoras present", result.Keywords)
	}
}
