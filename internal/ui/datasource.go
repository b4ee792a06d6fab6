package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// RowContent is what a list row displays for one contact.
type RowContent struct {
	Name     string
	LastName string
	Photo    fyne.Resource
}

// SectionDataSource is the pull-based read model the list renders from.
// Index arguments outside the current result are programming errors and panic.
type SectionDataSource interface {
	SectionCount() int
	RowCount(section int) int
	SectionTitle(section int) string
	Row(section, row int) RowContent
}

// Sections adapts a BuildSections result to SectionDataSource.
type Sections []engine.SectionGroup

func (s Sections) SectionCount() int {
	return len(s)
}

func (s Sections) RowCount(section int) int {
	return len(s.section(section).Contacts)
}

func (s Sections) SectionTitle(section int) string {
	return s.section(section).Letter
}

// Row returns the row content with placeholders for a missing last name or photo.
func (s Sections) Row(section, row int) RowContent {
	contacts := s.section(section).Contacts
	if row < 0 || row >= len(contacts) {
		panic(fmt.Sprintf("ui: %s: section %d row %d (rows: %d)", config.ErrRowRange, section, row, len(contacts)))
	}

	c := contacts[row]
	photo := c.Photo
	if photo == nil {
		photo = PlaceholderPhoto()
	}
	return RowContent{
		Name:     c.Name,
		LastName: c.LastNameOr(config.LastNamePlaceholder),
		Photo:    photo,
	}
}

// TotalRows counts the contacts across every section.
func (s Sections) TotalRows() int {
	n := 0
	for _, g := range s {
		n += len(g.Contacts)
	}
	return n
}

func (s Sections) section(i int) engine.SectionGroup {
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("ui: %s: %d (sections: %d)", config.ErrSectionRange, i, len(s)))
	}
	return s[i]
}

// PlaceholderPhoto is shown for contacts without a photo.
func PlaceholderPhoto() fyne.Resource {
	return theme.AccountIcon()
}
