package engine

import "fyne.io/fyne/v2"

// Contact is an immutable entry of the address book.
// It has no identity: duplicates are legal and are kept as-is.
type Contact struct {
	// Name is the first name. It is the grouping key and must not be empty.
	Name string

	// LastName is optional; nil means the contact has no last name.
	LastName *string

	// Photo is an opaque image reference; nil means no photo.
	Photo fyne.Resource
}

// NewContact builds a Contact. An empty lastName is stored as absent.
func NewContact(name, lastName string, photo fyne.Resource) Contact {
	c := Contact{Name: name, Photo: photo}
	if lastName != "" {
		c.LastName = &lastName
	}
	return c
}

// LastNameOr returns the last name, or fallback when it is absent.
func (c Contact) LastNameOr(fallback string) string {
	if c.LastName == nil {
		return fallback
	}
	return *c.LastName
}

// SectionGroup is one alphabetical section of the list.
// Groups are rebuilt from scratch on every search and never mutated.
type SectionGroup struct {
	// Letter is the upper-cased first character shared by every contact's Name.
	Letter string

	// Contacts keeps the order produced by the sort step.
	Contacts []Contact
}
