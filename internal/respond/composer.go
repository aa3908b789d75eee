// Package respond assembles the final answer text from the ranked matches:
// a type-keyed template filled with the best entry, framed by an
// encouragement, a learning tip and a follow-up prompt. Randomness comes
// exclusively from the injected rand source, so a fixed seed produces a
// fixed response.
package respond

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
	"github.com/edu-assistant/backend/internal/ranking"
)

// FallbackTopic is the sentinel topic on the no-match path.
const FallbackTopic = "consulta_general"

const fallbackConfidence = 0.1

// Resource is an external study aid attached to a response.
type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Result is the composed answer in the shape the request layer returns.
type Result struct {
	Response     string
	Subject      knowledge.Subject
	Topic        string
	QuestionType nlp.QuestionType
	Confidence   float64
	Suggestions  []string
	Resources    []Resource
}

type Composer struct {
	rng            *rand.Rand
	maxSuggestions int
}

func NewComposer(rng *rand.Rand) *Composer {
	return &Composer{
		rng:            rng,
		maxSuggestions: 5,
	}
}

// Compose builds the full response. An empty match list takes the
// fallback path; this is a designed outcome, not an error.
func (c *Composer) Compose(processed nlp.ProcessedQuestion, matches []ranking.Match) Result {
	if len(matches) == 0 {
		return c.composeFallback(processed)
	}

	best := matches[0]
	topic := best.Entry.Topic
	confidence := best.Score
	if confidence > 1.0 {
		confidence = 1.0
	}

	templates, ok := responseTemplates[processed.QuestionType]
	if !ok {
		templates = responseTemplates[nlp.TypeGeneral]
	}
	template := templates[c.rng.Intn(len(templates))]

	main := strings.NewReplacer(
		"{topic}", topic,
		"{content}", best.Entry.Content,
	).Replace(template)

	encouragement := encouragements[c.rng.Intn(len(encouragements))]
	tip := learningTips[c.rng.Intn(len(learningTips))]
	followUp := followUps[c.rng.Intn(len(followUps))]

	response := encouragement + "\n\n" + main + "\n\n" + tip + "\n\n" + followUp

	return Result{
		Response:     response,
		Subject:      best.Entry.Subject,
		Topic:        topic,
		QuestionType: processed.QuestionType,
		Confidence:   confidence,
		Suggestions:  c.buildSuggestions(best.Entry.Subject, topic, matches),
		Resources:    resourcesFor(best.Entry.Subject),
	}
}

func (c *Composer) composeFallback(processed nlp.ProcessedQuestion) Result {
	var sb strings.Builder
	sb.WriteString(fallbackResponses[c.rng.Intn(len(fallbackResponses))])

	if processed.Subject != knowledge.SubjectGeneral {
		sb.WriteString(fmt.Sprintf("\n\n¿Te interesa que te hable sobre otros temas de %s?", processed.Subject))
	}

	sb.WriteString("\n\n💡 Consejo: Intenta reformular tu pregunta o ser más específico sobre el tema que te interesa.")
	sb.WriteString("\n\n¿Puedes darme más detalles sobre lo que necesitas saber?")

	suggestions, ok := generalSuggestions[processed.Subject]
	if !ok {
		suggestions = generalSuggestions[knowledge.SubjectGeneral]
	}

	return Result{
		Response:     sb.String(),
		Subject:      processed.Subject,
		Topic:        FallbackTopic,
		QuestionType: nlp.TypeGeneral,
		Confidence:   fallbackConfidence,
		Suggestions:  suggestions,
		Resources:    []Resource{},
	}
}

// buildSuggestions prefers alternate ranked topics, then tops up with two
// canned subject suggestions sampled without replacement, capped at five.
func (c *Composer) buildSuggestions(subject knowledge.Subject, chosenTopic string, matches []ranking.Match) []string {
	var suggestions []string

	limit := len(matches)
	if limit > 4 {
		limit = 4
	}
	for _, m := range matches[1:limit] {
		if m.Entry.Topic != chosenTopic {
			suggestions = append(suggestions, fmt.Sprintf("¿Qué es %s?", m.Entry.Topic))
		}
	}

	if canned, ok := subjectSuggestions[subject]; ok {
		for _, i := range c.rng.Perm(len(canned))[:2] {
			suggestions = append(suggestions, canned[i])
		}
	}

	if len(suggestions) > c.maxSuggestions {
		suggestions = suggestions[:c.maxSuggestions]
	}
	return suggestions
}

func resourcesFor(subject knowledge.Subject) []Resource {
	resources, ok := subjectResources[subject]
	if !ok {
		return []Resource{}
	}
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}
