package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/kljensen/snowball/spanish"

	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
)

// tokenRegex splits on anything that is not a letter, digit, underscore or
// dash. Compiled once at package initialization.
var tokenRegex = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// tfidfIndex holds the precomputed vector space for one snapshot of the
// knowledge store. It is immutable after construction.
type tfidfIndex struct {
	entries []knowledge.Entry
	vectors []map[string]float64
	norms   []float64
	docFreq map[string]int
	total   int
}

// TFIDFStrategy ranks entries by cosine similarity between the question
// text and each entry's topic+content, with an additive boost when the
// entry's subject matches the detected subject. Index rebuilds are
// copy-on-write: a new index is built off to the side and swapped in
// atomically, so readers never block.
type TFIDFStrategy struct {
	idx          atomic.Pointer[tfidfIndex]
	minScore     float64
	subjectBoost float64
}

func NewTFIDFStrategy(entries []knowledge.Entry, cfg Config) *TFIDFStrategy {
	if cfg.MinScore == 0 {
		cfg.MinScore = 0.05
	}
	if cfg.SubjectBoost == 0 {
		cfg.SubjectBoost = 0.2
	}

	s := &TFIDFStrategy{
		minScore:     cfg.MinScore,
		subjectBoost: cfg.SubjectBoost,
	}
	s.Rebuild(entries)
	return s
}

func (s *TFIDFStrategy) Rebuild(entries []knowledge.Entry) {
	idx := &tfidfIndex{
		entries: entries,
		vectors: make([]map[string]float64, len(entries)),
		norms:   make([]float64, len(entries)),
		docFreq: make(map[string]int),
		total:   len(entries),
	}

	tokenLists := make([][]string, len(entries))
	for i, e := range entries {
		tokens := tokenize(e.SearchText())
		tokenLists[i] = tokens

		seen := make(map[string]bool)
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				idx.docFreq[tok]++
			}
		}
	}

	for i, tokens := range tokenLists {
		vec := weightedVector(tokens, idx.docFreq, idx.total)
		idx.vectors[i] = vec
		idx.norms[i] = vectorNorm(vec)
	}

	s.idx.Store(idx)
}

func (s *TFIDFStrategy) Rank(q nlp.ProcessedQuestion, topK int) []Match {
	idx := s.idx.Load()
	if idx == nil || idx.total == 0 || topK <= 0 {
		return nil
	}

	queryVec := weightedVector(tokenize(q.Normalized), idx.docFreq, idx.total)
	queryNorm := vectorNorm(queryVec)
	if queryNorm == 0 {
		return nil
	}

	var matches []Match
	for i, e := range idx.entries {
		score := cosine(queryVec, queryNorm, idx.vectors[i], idx.norms[i])
		if score <= s.minScore {
			continue
		}
		if e.Subject == q.Subject {
			score += s.subjectBoost
		}
		matches = append(matches, Match{Entry: e, Score: score})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// tokenize lower-cases, splits on non-word characters, drops tokens
// shorter than three runes and stems the rest with the Spanish snowball
// stemmer so inflected forms land on the same term.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ToLower(text)
	parts := tokenRegex.Split(text, -1)

	var tokens []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len([]rune(part)) < 3 {
			continue
		}
		if stemmed := spanish.Stem(part, true); stemmed != "" {
			part = stemmed
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// weightedVector computes tf*idf weights for the tokens. Terms unseen in
// the corpus get zero weight and are omitted.
func weightedVector(tokens []string, docFreq map[string]int, totalDocs int) map[string]float64 {
	if len(tokens) == 0 || totalDocs == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}

	vec := make(map[string]float64, len(counts))
	total := float64(len(tokens))
	for term, count := range counts {
		df := docFreq[term]
		if df == 0 {
			continue
		}
		tf := float64(count) / total
		// smoothed idf keeps terms present in every document from
		// zeroing out entirely
		idf := math.Log(float64(totalDocs+1)/float64(df+1)) + 1
		vec[term] = tf * idf
	}
	return vec
}

func vectorNorm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func cosine(a map[string]float64, normA float64, b map[string]float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}

	// iterate the smaller map
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return dot / (normA * normB)
}
