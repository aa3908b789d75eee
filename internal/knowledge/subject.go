// Package knowledge holds the subject taxonomy and the knowledge entries
// the assistant answers from. The store is read-mostly: entries are loaded
// once at startup and only grow through privileged AddEntry calls.
package knowledge

import "strings"

// Subject is one of the fixed academic domains.
type Subject string

const (
	SubjectMathematics Subject = "matematicas"
	SubjectPhysics     Subject = "fisica"
	SubjectChemistry   Subject = "quimica"
	SubjectBiology     Subject = "biologia"
	SubjectHistory     Subject = "historia"
	SubjectGeography   Subject = "geografia"
	SubjectLanguage    Subject = "lengua"

	// SubjectGeneral is the sentinel used when classification finds no
	// signal. It never appears on a stored entry.
	SubjectGeneral Subject = "general"
)

// SubjectOrder pins the iteration order used everywhere subjects are
// scanned. Subject classification resolves score ties to the earliest
// subject in this slice, so the order is part of the observable behavior.
var SubjectOrder = []Subject{
	SubjectMathematics,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectHistory,
	SubjectGeography,
	SubjectLanguage,
}

func (s Subject) Valid() bool {
	for _, known := range SubjectOrder {
		if s == known {
			return true
		}
	}
	return false
}

// DisplayName returns the subject with its first letter upper-cased, the
// form used in subject summaries.
func (s Subject) DisplayName() string {
	str := string(s)
	if str == "" {
		return str
	}
	return strings.ToUpper(str[:1]) + str[1:]
}

// Difficulty grades an entry.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
