package knowledge

import "strings"

// Entry is a single knowledge snippet. Entries are immutable once loaded;
// the persistent variant soft-deactivates rows instead of deleting them.
type Entry struct {
	ID         int
	Subject    Subject
	Topic      string
	Content    string
	Keywords   []string
	Difficulty Difficulty
}

// SearchText returns the text the retrieval index is built over.
func (e Entry) SearchText() string {
	return e.Topic + " " + e.Content
}

// KeywordSet returns the entry keywords as a set. Duplicates in the source
// list collapse here, which is how scoring treats them.
func (e Entry) KeywordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.Keywords))
	for _, kw := range e.Keywords {
		set[strings.ToLower(kw)] = struct{}{}
	}
	return set
}
