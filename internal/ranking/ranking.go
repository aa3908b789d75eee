// Package ranking scores knowledge entries against a processed question.
// Two interchangeable strategies exist: TF-IDF cosine similarity over the
// entry texts (the default) and Jaccard overlap over keyword sets. Both
// return matches sorted descending by final score, at most topK of them.
package ranking

import (
	"fmt"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
)

// Match pairs an entry with its (possibly boosted) similarity score.
type Match struct {
	Entry knowledge.Entry
	Score float64
}

// Strategy ranks entries for a question. Rebuild replaces the underlying
// index with one built over the given entries; implementations swap the
// index atomically so concurrent Rank calls read a consistent snapshot.
type Strategy interface {
	Rank(q nlp.ProcessedQuestion, topK int) []Match
	Rebuild(entries []knowledge.Entry)
}

// Config carries the scoring knobs shared by both strategies.
type Config struct {
	MinScore     float64
	SubjectBoost float64
}

// New builds the named strategy over the given entries. Known names are
// "tfidf" and "keywords".
func New(name string, entries []knowledge.Entry, cfg Config) (Strategy, error) {
	switch name {
	case "tfidf":
		return NewTFIDFStrategy(entries, cfg), nil
	case "keywords":
		return NewKeywordOverlapStrategy(entries), nil
	default:
		return nil, fmt.Errorf("unknown ranking strategy %q", name)
	}
}
