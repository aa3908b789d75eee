package nlp

import (
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
		want       []string
		absent     []string
	}{
		{
			name:       "drops stopwords and short tokens",
			normalized: "que es la fotosintesis de las plantas",
			want:       []string{"fotosintesis", "plantas"},
			absent:     []string{"que", "es", "la", "de", "las"},
		},
		{
			name:       "keeps accented words",
			normalized: "energía cinética del péndulo",
			want:       []string{"energía", "cinética", "péndulo"},
			absent:     []string{"del"},
		},
		{
			name:       "drops tokens with digits",
			normalized: "resuelve 2x5 con algebra",
			want:       []string{"resuelve", "algebra"},
			absent:     []string{"2x5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.normalized)
			joined := " " + strings.Join(got, " ") + " "

			for _, w := range tt.want {
				if !strings.Contains(joined, " "+w+" ") {
					t.Errorf("ExtractKeywords(%q) = %v, missing %q", tt.normalized, got, w)
				}
			}
			for _, w := range tt.absent {
				if strings.Contains(joined, " "+w+" ") {
					t.Errorf("ExtractKeywords(%q) = %v, should not contain %q", tt.normalized, got, w)
				}
			}
		})
	}
}

func TestExtractKeywordsLimit(t *testing.T) {
	normalized := "triangulo cuadrado circulo rombo pentagono hexagono " +
		"esfera cilindro piramide prisma trapecio poligono"

	got := ExtractKeywords(normalized)
	if len(got) != maxKeywords {
		t.Errorf("ExtractKeywords returned %d keywords, want %d", len(got), maxKeywords)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords(""); len(got) != 0 {
		t.Errorf("ExtractKeywords(\"\") = %v, want empty", got)
	}
}

func TestFallbackKeywords(t *testing.T) {
	got := fallbackKeywords("que es la fotosintesis")
	if len(got) != 1 || got[0] != "fotosintesis" {
		t.Errorf("fallbackKeywords = %v, want [fotosintesis]", got)
	}
}
