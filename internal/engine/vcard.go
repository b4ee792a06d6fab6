package engine

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/config"
)

// VCardSource reads contacts from a local .vcf file.
type VCardSource struct {
	Path string
}

// Load opens the file and decodes every card in it.
func (s *VCardSource) Load(ctx context.Context) ([]Contact, error) {
	if s.Path == "" {
		return nil, errors.New(config.ErrLocalPathEmpty)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	// Best effort close on a read-only file.
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err == nil && info.Size() > config.MaxVCardFileSize {
		return nil, fmt.Errorf("%s: %d bytes", config.ErrVCardTooLarge, info.Size())
	}

	return DecodeContacts(ctx, f, filepath.Base(s.Path))
}

// DecodeContacts converts a vCard stream into contacts.
// Malformed cards are skipped; a card without any usable name fails the
// whole decode. origin prefixes photo resource names.
func DecodeContacts(ctx context.Context, r io.Reader, origin string) ([]Contact, error) {
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompSource),
		slog.String(config.LogKeyFile, origin),
	)

	decoder := vcard.NewDecoder(r)
	contacts := make([]Contact, 0)

	for cardIndex := 0; ; cardIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard,
				config.LogKeyIndex, cardIndex,
				config.LogKeyError, err)
			if errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			continue
		}

		name, lastName := cardName(card)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardNoName,
				&ValidationError{Index: cardIndex, Err: ErrEmptyName})
		}

		photo, err := cardPhoto(card, fmt.Sprintf(config.PhotoResourceName, origin, cardIndex))
		if err != nil {
			log.Warn(config.MsgSkippedPhoto,
				config.LogKeyIndex, cardIndex,
				config.LogKeyName, name,
				config.LogKeyError, err)
		}

		contacts = append(contacts, NewContact(name, lastName, photo))
	}

	return contacts, nil
}

// cardName picks the first and last name of a card.
// Strategy: N (given + family) > FN split at the first space.
func cardName(card vcard.Card) (string, string) {
	if n := card.Name(); n != nil {
		given := strings.TrimSpace(n.GivenName)
		if given != "" {
			return given, strings.TrimSpace(n.FamilyName)
		}
	}

	fn := strings.TrimSpace(card.PreferredValue(config.VCardFN))
	first, rest, _ := strings.Cut(fn, config.NameSeparator)
	return first, strings.TrimSpace(rest)
}

// cardPhoto extracts an inline photo. Photos referenced by URL are ignored
// because contacts never come from the network. It returns nil, nil when the
// card has no inline photo.
func cardPhoto(card vcard.Card, resourceName string) (fyne.Resource, error) {
	field := card.Get(config.VCardPhoto)
	if field == nil || field.Value == "" {
		return nil, nil
	}

	var encoded string
	switch {
	case strings.HasPrefix(field.Value, config.DataURIPrefix):
		// vCard 4.0: data:image/png;base64,....
		_, payload, ok := strings.Cut(field.Value, config.DataURIBase64)
		if !ok {
			return nil, nil
		}
		encoded = payload
	case isBase64Encoding(field.Params.Get(config.VCardParamEncoding)):
		// vCard 3.0: PHOTO;ENCODING=b;TYPE=JPEG:....
		encoded = field.Value
	default:
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(stripSpaces(encoded))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPhotoDecode, err)
	}
	return fyne.NewStaticResource(resourceName, data), nil
}

func isBase64Encoding(enc string) bool {
	return strings.EqualFold(enc, config.VCardEncodingB) || strings.EqualFold(enc, config.VCardEncodingB64)
}

// stripSpaces drops whitespace left over from folded lines.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
