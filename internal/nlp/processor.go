package nlp

import "github.com/edu-assistant/backend/internal/knowledge"

// ProcessedQuestion is the classifier output for one question. Subject and
// QuestionType are always set; absence of signal maps to the general
// sentinel, never to an empty value.
type ProcessedQuestion struct {
	Original     string
	Normalized   string
	Subject      knowledge.Subject
	QuestionType QuestionType
	Keywords     []string
}

// Processor runs the full question analysis pass. It is stateless and safe
// for concurrent use.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

func (p *Processor) Process(question string) ProcessedQuestion {
	normalized := Normalize(question)

	return ProcessedQuestion{
		Original:     question,
		Normalized:   normalized,
		Subject:      DetectSubject(normalized),
		QuestionType: ClassifyQuestionType(normalized),
		Keywords:     ExtractKeywords(normalized),
	}
}
