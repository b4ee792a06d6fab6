package engine

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-contacts/internal/config"
)

//go:embed avatars/*.svg
var avatarFS embed.FS

// ContactSource defines the contract for obtaining the full contact set.
// The set is loaded once and treated as immutable afterwards.
type ContactSource interface {
	Load(ctx context.Context) ([]Contact, error)
}

// NewSource maps a configured source mode to its ContactSource.
func NewSource(mode, localPath string) (ContactSource, error) {
	switch mode {
	case config.SourceModeSample, "":
		return SampleSource{}, nil
	case config.SourceModeLocal:
		if localPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return &VCardSource{Path: localPath}, nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, mode)
	}
}

// LoadContacts runs src and rejects the result if any contact is malformed.
// It is the single ingestion path in front of BuildSections.
func LoadContacts(ctx context.Context, src ContactSource) ([]Contact, error) {
	if src == nil {
		return nil, errors.New(config.ErrSourceMissing)
	}
	start := time.Now()

	contacts, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSourceLoad, err)
	}
	if err := Validate(contacts); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSourceLoad, err)
	}

	slog.Info(config.MsgContactsLoaded,
		config.LogKeyComponent, config.CompSource,
		config.LogKeyCount, len(contacts),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return contacts, nil
}

// SampleSource serves the built-in demo address book.
type SampleSource struct{}

// Load returns a fresh copy of the sample contacts.
func (SampleSource) Load(ctx context.Context) ([]Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user1, user2 := avatar("user1.svg"), avatar("user2.svg")
	user3, user4 := avatar("user3.svg"), avatar("user4.svg")

	return []Contact{
		NewContact("Joe", "Smith", nil),
		NewContact("James", "James", nil),
		NewContact("Alex", "Pushkin", user1),
		NewContact("Jack", "", nil),
		NewContact("Bread", "Lemon", nil),
		NewContact("Adam", "Smith", nil),
		NewContact("Aaron", "James", nil),
		NewContact("Alex", "Brown", nil),
		NewContact("Jack", "Nickols", nil),
		NewContact("Brenda", "Johnson", user4),
		NewContact("Joe", "Smith", nil),
		NewContact("James", "James", user2),
		NewContact("Alex", "Pit", user3),
		NewContact("Jack", "", nil),
		NewContact("Bread", "Johnson", nil),
	}, nil
}

// avatar loads an embedded sample photo. The files are compiled in, so a
// read failure is a build defect.
func avatar(name string) fyne.Resource {
	data, err := avatarFS.ReadFile("avatars/" + name)
	if err != nil {
		panic(fmt.Sprintf("engine: missing embedded avatar %s: %v", name, err))
	}
	return fyne.NewStaticResource(name, data)
}
