package ui

import (
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// SearchBridge turns search field notifications into section rebuilds.
// Every notification runs exactly one BuildSections pass, synchronously, and
// hands the complete result to the consumer. It is meant to be driven from
// the UI goroutine only.
type SearchBridge struct {
	contacts []engine.Contact
	query    string
	onUpdate func(Sections)
}

// NewSearchBridge creates a bridge publishing every rebuilt result to onUpdate.
func NewSearchBridge(onUpdate func(Sections)) *SearchBridge {
	return &SearchBridge{onUpdate: onUpdate}
}

// SetContacts replaces the full contact list and rebuilds with the current query.
func (b *SearchBridge) SetContacts(contacts []engine.Contact) {
	b.contacts = contacts
	b.rebuild()
}

// Contacts returns the full, unfiltered contact list.
func (b *SearchBridge) Contacts() []engine.Contact {
	return b.contacts
}

// Query returns the last query applied; "" means no filter.
func (b *SearchBridge) Query() string {
	return b.query
}

// QueryChanged handles a text edit. Text that trims to nothing is a clear.
func (b *SearchBridge) QueryChanged(text string) {
	q := strings.TrimSpace(text)
	if q == "" {
		b.Cleared()
		return
	}

	slog.Debug(config.MsgSearchChanged,
		config.LogKeyComponent, config.CompSearch,
		config.LogKeyQueryLen, len(q))

	b.query = q
	b.rebuild()
}

// Cleared handles an explicit cancel of the search.
func (b *SearchBridge) Cleared() {
	slog.Debug(config.MsgSearchCleared, config.LogKeyComponent, config.CompSearch)

	b.query = ""
	b.rebuild()
}

func (b *SearchBridge) rebuild() {
	sections := Sections(engine.BuildSections(b.contacts, b.query))

	slog.Debug(config.MsgSectionsBuilt,
		config.LogKeyComponent, config.CompSearch,
		config.LogKeySections, sections.SectionCount(),
		config.LogKeyCount, sections.TotalRows())

	if b.onUpdate != nil {
		b.onUpdate(sections)
	}
}
