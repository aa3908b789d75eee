package nlp

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

const maxKeywords = 10

// spanishStopwords mirrors the usual Spanish stopword set for question
// text; function words carry no retrieval signal.
var spanishStopwords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {},
	"unos": {}, "unas": {}, "de": {}, "del": {}, "al": {}, "a": {},
	"en": {}, "y": {}, "o": {}, "u": {}, "e": {}, "que": {}, "es": {},
	"se": {}, "no": {}, "si": {}, "te": {}, "lo": {}, "le": {}, "les": {},
	"da": {}, "su": {}, "sus": {}, "por": {}, "son": {}, "con": {},
	"para": {}, "como": {}, "mas": {}, "pero": {}, "sin": {}, "sobre": {},
	"entre": {}, "hasta": {}, "desde": {}, "cuando": {}, "donde": {},
	"quien": {}, "cual": {}, "cuales": {}, "esta": {}, "este": {},
	"esto": {}, "estas": {}, "estos": {}, "esa": {}, "ese": {}, "eso": {},
	"mi": {}, "tu": {}, "nos": {}, "me": {}, "ya": {}, "muy": {},
	"tambien": {}, "hay": {}, "ser": {}, "fue": {}, "era": {}, "han": {},
	"ha": {}, "he": {}, "tiene": {}, "tienen": {}, "puede": {}, "pueden": {},
}

// ExtractKeywords tokenizes the normalized text with prose, drops
// stopwords, short tokens and non-alphabetic tokens, and returns at most
// ten keywords in source order without deduplication. On tokenizer failure
// it falls back to whitespace splitting with a length filter.
func ExtractKeywords(normalized string) []string {
	doc, err := prose.NewDocument(normalized,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return fallbackKeywords(normalized)
	}

	var keywords []string
	for _, tok := range doc.Tokens() {
		word := tok.Text
		if len([]rune(word)) <= 2 {
			continue
		}
		if _, stop := spanishStopwords[word]; stop {
			continue
		}
		if !isAlphabetic(word) {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func fallbackKeywords(normalized string) []string {
	var keywords []string
	for _, word := range strings.Fields(normalized) {
		if len([]rune(word)) > 3 {
			keywords = append(keywords, word)
			if len(keywords) == maxKeywords {
				break
			}
		}
	}
	return keywords
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}
