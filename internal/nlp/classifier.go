package nlp

import (
	"strings"

	"github.com/edu-assistant/backend/internal/knowledge"
)

// QuestionType is the intent category of a question.
type QuestionType string

const (
	TypeDefinition  QuestionType = "definition"
	TypeExplanation QuestionType = "explanation"
	TypeCalculation QuestionType = "calculation"
	TypeComparison  QuestionType = "comparison"
	TypeExample     QuestionType = "example"
	TypeProcedure   QuestionType = "procedure"
	TypeGeneral     QuestionType = "general"
)

// questionPatterns is an explicit precedence chain: the first group with
// any phrase match wins, regardless of how many later groups also match.
var questionPatterns = []struct {
	Type    QuestionType
	Phrases []string
}{
	{TypeDefinition, []string{"que es", "define", "definicion", "significa", "concepto"}},
	{TypeExplanation, []string{"como", "por que", "explica", "porque", "como funciona"}},
	{TypeCalculation, []string{"calcula", "resuelve", "resultado", "cuanto", "resolver"}},
	{TypeComparison, []string{"diferencia", "compara", "versus", "mejor", "entre"}},
	{TypeExample, []string{"ejemplo", "casos", "muestra", "ejemplos"}},
	{TypeProcedure, []string{"pasos", "proceso", "metodo", "procedimiento", "como hacer"}},
}

// DetectSubject scores the normalized text against every subject's keyword
// list by substring containment and returns the best-scoring subject. Ties
// resolve to the earliest subject in knowledge.SubjectOrder; a zero best
// score yields SubjectGeneral.
func DetectSubject(normalized string) knowledge.Subject {
	best := knowledge.SubjectGeneral
	bestScore := 0

	for _, subject := range knowledge.SubjectOrder {
		score := 0
		for _, keyword := range subjectKeywords[subject] {
			if strings.Contains(normalized, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = subject
			bestScore = score
		}
	}

	return best
}

// ClassifyQuestionType walks the pattern groups in order and returns the
// first type with a phrase present in the normalized text, or TypeGeneral.
func ClassifyQuestionType(normalized string) QuestionType {
	for _, group := range questionPatterns {
		for _, phrase := range group.Phrases {
			if strings.Contains(normalized, phrase) {
				return group.Type
			}
		}
	}
	return TypeGeneral
}
