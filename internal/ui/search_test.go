package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/ui"
)

// recorder collects every result published by a bridge.
type recorder struct {
	results []ui.Sections
}

func (r *recorder) update(s ui.Sections) {
	r.results = append(r.results, s)
}

func (r *recorder) last() ui.Sections {
	return r.results[len(r.results)-1]
}

func bridgeContacts() []engine.Contact {
	return []engine.Contact{
		engine.NewContact("Jack", "", nil),
		engine.NewContact("Jack", "Nickols", nil),
		engine.NewContact("Alex", "Pit", nil),
	}
}

func TestSearchBridge_SetContactsBuildsOnce(t *testing.T) {
	rec := &recorder{}
	b := ui.NewSearchBridge(rec.update)

	b.SetContacts(bridgeContacts())

	require.Len(t, rec.results, 1)
	assert.Equal(t, 2, rec.last().SectionCount())
	assert.Len(t, b.Contacts(), 3)
	assert.Equal(t, "", b.Query())
}

func TestSearchBridge_OneBuildPerNotification(t *testing.T) {
	rec := &recorder{}
	b := ui.NewSearchBridge(rec.update)
	b.SetContacts(bridgeContacts())

	b.QueryChanged("j")
	b.QueryChanged("ja")
	b.QueryChanged("jac")
	b.Cleared()

	assert.Len(t, rec.results, 5)
	assert.Equal(t, 2, rec.last().SectionCount(), "Cleared restores the full list")
}

func TestSearchBridge_Filtering(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		sections int
		rows     int
	}{
		{"Substring_AcrossNames", "ck nic", 1, 1},
		{"CaseInsensitive", "ALEX", 1, 1},
		{"FirstNameOnly", "jack", 1, 2},
		{"NoMatch", "zzz", 0, 0},
		{"TrimmedQuery", "  pit  ", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			b := ui.NewSearchBridge(rec.update)
			b.SetContacts(bridgeContacts())

			b.QueryChanged(tt.query)

			assert.Equal(t, tt.sections, rec.last().SectionCount())
			assert.Equal(t, tt.rows, rec.last().TotalRows())
		})
	}
}

func TestSearchBridge_WhitespaceIsClear(t *testing.T) {
	rec := &recorder{}
	b := ui.NewSearchBridge(rec.update)
	b.SetContacts(bridgeContacts())

	b.QueryChanged("pit")
	require.Equal(t, "pit", b.Query())

	b.QueryChanged("   ")

	assert.Equal(t, "", b.Query())
	assert.Equal(t, 3, rec.last().TotalRows())
}

func TestSearchBridge_SetContactsKeepsQuery(t *testing.T) {
	rec := &recorder{}
	b := ui.NewSearchBridge(rec.update)
	b.QueryChanged("alex")
	assert.Equal(t, 0, rec.last().SectionCount(), "No contacts loaded yet")

	b.SetContacts(bridgeContacts())

	assert.Equal(t, "alex", b.Query())
	assert.Equal(t, 1, rec.last().TotalRows())
}

func TestSearchBridge_NilConsumer(t *testing.T) {
	b := ui.NewSearchBridge(nil)
	assert.NotPanics(t, func() {
		b.SetContacts(bridgeContacts())
		b.QueryChanged("jack")
	})
}
