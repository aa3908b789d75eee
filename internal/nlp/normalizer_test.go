package nlp

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Fotosíntesis",
			want:  "fotosíntesis",
		},
		{
			name:  "keeps accents and inverted punctuation",
			input: "¿Qué es la célula?",
			want:  "¿qué es la célula?",
		},
		{
			name:  "strips symbols",
			input: "energía = m*c^2 @hoy",
			want:  "energía mc2 hoy",
		},
		{
			name:  "collapses whitespace",
			input: "  que   es \t la \n celula  ",
			want:  "que es la celula",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only symbols",
			input: "@#$%&*",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"¿Qué es la Fotosíntesis?",
		"  CALCULA   2x + 5 = 11  ",
		"¡explícame las leyes de newton!",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
