package ranking

import (
	"sort"
	"sync/atomic"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
)

// crossSubjectPenalty discounts entries outside the detected subject when
// they are pulled in to fill the result list.
const crossSubjectPenalty = 0.7

// KeywordOverlapStrategy ranks entries by Jaccard similarity between the
// question's extracted keywords and each entry's keyword set. Same-subject
// entries are scored first; cross-subject entries only fill remaining
// slots, at a penalty.
type KeywordOverlapStrategy struct {
	entries atomic.Pointer[[]knowledge.Entry]
}

func NewKeywordOverlapStrategy(entries []knowledge.Entry) *KeywordOverlapStrategy {
	s := &KeywordOverlapStrategy{}
	s.Rebuild(entries)
	return s
}

func (s *KeywordOverlapStrategy) Rebuild(entries []knowledge.Entry) {
	snapshot := make([]knowledge.Entry, len(entries))
	copy(snapshot, entries)
	s.entries.Store(&snapshot)
}

func (s *KeywordOverlapStrategy) Rank(q nlp.ProcessedQuestion, topK int) []Match {
	ptr := s.entries.Load()
	if ptr == nil || topK <= 0 {
		return nil
	}
	entries := *ptr

	querySet := toSet(q.Keywords)

	var same, cross []Match
	for _, e := range entries {
		score := jaccard(querySet, e.KeywordSet())
		if score == 0 {
			continue
		}
		if e.Subject == q.Subject {
			same = append(same, Match{Entry: e, Score: score})
		} else {
			cross = append(cross, Match{Entry: e, Score: score * crossSubjectPenalty})
		}
	}

	sortDescending(same)
	matches := same
	if len(matches) < topK {
		sortDescending(cross)
		matches = append(matches, cross...)
		sortDescending(matches)
	}

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// Jaccard returns |A∩B| / |A∪B| for two keyword lists, zero when either
// is empty. Exported for direct scoring of keyword lists.
func Jaccard(a, b []string) float64 {
	return jaccard(toSet(a), toSet(b))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for kw := range a {
		if _, ok := b[kw]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	return set
}

func sortDescending(matches []Match) {
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
}
