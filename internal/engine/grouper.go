package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyName reports a contact whose Name is empty.
var ErrEmptyName = errors.New(config.ErrEmptyName)

// ValidationError identifies the first malformed contact of a list.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at index %d: %v", config.ErrInvalidContact, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks contacts before they are handed to BuildSections.
// Sources call it at ingestion so the grouper never sees an empty grouping key.
func Validate(contacts []Contact) error {
	for i, c := range contacts {
		if c.Name == "" {
			return &ValidationError{Index: i, Err: ErrEmptyName}
		}
	}
	return nil
}

// BuildSections filters contacts by query, sorts them and groups them by the
// upper-cased first character of their name.
//
// An empty query keeps every contact. Otherwise a contact is kept when the
// lower-cased query is a substring of its lower-cased "name lastName" (or just
// "name" without a last name). The result is ordered by section letter and
// each section keeps the name/last-name order; equal contacts keep their input
// order. The input slice is not modified.
//
// BuildSections panics on a contact with an empty Name; run Validate first.
func BuildSections(contacts []Contact, query string) []SectionGroup {
	retained := make([]Contact, 0, len(contacts))
	if query == "" {
		retained = append(retained, contacts...)
	} else {
		needle := strings.ToLower(query)
		for _, c := range contacts {
			if strings.Contains(fullName(c), needle) {
				retained = append(retained, c)
			}
		}
	}

	slices.SortStableFunc(retained, compareContacts)

	// Ordered map: slice of groups indexed by letter, sorted by key afterwards.
	groups := make([]SectionGroup, 0)
	index := make(map[string]int)
	for _, c := range retained {
		letter := sectionLetter(c.Name)
		i, ok := index[letter]
		if !ok {
			i = len(groups)
			index[letter] = i
			groups = append(groups, SectionGroup{Letter: letter})
		}
		groups[i].Contacts = append(groups[i].Contacts, c)
	}

	slices.SortFunc(groups, func(a, b SectionGroup) int {
		return strings.Compare(a.Letter, b.Letter)
	})
	return groups
}

// compareContacts orders by name, then last name with absent sorting as "".
func compareContacts(a, b Contact) int {
	return cmp.Or(
		strings.Compare(a.Name, b.Name),
		strings.Compare(a.LastNameOr(""), b.LastNameOr("")),
	)
}

// fullName is the lower-cased string a query is matched against.
// Lower-casing is rune by rune so a final sigma still matches a typed σ.
func fullName(c Contact) string {
	name := strings.ToLower(c.Name)
	if c.LastName == nil {
		return name
	}
	return name + config.NameSeparator + strings.ToLower(*c.LastName)
}

// sectionLetter returns the upper-cased first character of name in NFC form,
// so a decomposed "E\u0301" files under "É" like its precomposed spelling.
func sectionLetter(name string) string {
	r, size := utf8.DecodeRuneInString(norm.NFC.String(name))
	if size == 0 {
		panic(fmt.Sprintf("engine: %s", config.ErrEmptyName))
	}
	return string(unicode.ToUpper(r))
}
