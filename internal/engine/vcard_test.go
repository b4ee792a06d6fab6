package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// onePixelPNG is a 1x1 transparent PNG, base64 encoded.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func writeVCF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))
	return path
}

func TestVCardSource_Load_Names(t *testing.T) {
	vcf := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Jack Nickols",
		"N:Nickols;Jack;;;",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jack",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Alex van Pit",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ignored Formatted",
		"N:;Brenda;;;",
		"END:VCARD",
	}, "\r\n") + "\r\n"

	src := &engine.VCardSource{Path: writeVCF(t, vcf)}
	contacts, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 4)

	assert.Equal(t, "Jack", contacts[0].Name)
	assert.Equal(t, "Nickols", contacts[0].LastNameOr("nil"))

	assert.Equal(t, "Jack", contacts[1].Name)
	assert.Nil(t, contacts[1].LastName, "FN without a space has no last name")

	assert.Equal(t, "Alex", contacts[2].Name)
	assert.Equal(t, "van Pit", contacts[2].LastNameOr("nil"), "FN is split at the first space only")

	assert.Equal(t, "Brenda", contacts[3].Name, "Structured name wins over FN")
	assert.Nil(t, contacts[3].LastName, "Empty family name is absent")
}

func TestVCardSource_Load_Photos(t *testing.T) {
	vcf := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Pit;Alex;;;",
		"PHOTO;ENCODING=b;TYPE=PNG:" + onePixelPNG,
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"N:Johnson;Brenda;;;",
		"PHOTO:data:image/png;base64," + onePixelPNG,
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"N:Smith;Joe;;;",
		"PHOTO:https://example.com/joe.png",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Lemon;Bread;;;",
		"PHOTO;ENCODING=b;TYPE=PNG:!!!not-base64!!!",
		"END:VCARD",
	}, "\r\n") + "\r\n"

	src := &engine.VCardSource{Path: writeVCF(t, vcf)}
	contacts, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 4)

	require.NotNil(t, contacts[0].Photo, "vCard 3 inline photo")
	assert.NotEmpty(t, contacts[0].Photo.Content())
	assert.Equal(t, "contacts.vcf-photo-0", contacts[0].Photo.Name())

	require.NotNil(t, contacts[1].Photo, "vCard 4 data URI photo")
	assert.Equal(t, contacts[0].Photo.Content(), contacts[1].Photo.Content())

	assert.Nil(t, contacts[2].Photo, "Remote photos are never fetched")
	assert.Nil(t, contacts[3].Photo, "Undecodable photo is dropped, contact kept")
	assert.Equal(t, "Bread", contacts[3].Name)
}

func TestVCardSource_Load_NoName(t *testing.T) {
	vcf := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Joe\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nEMAIL:ghost@example.com\r\nEND:VCARD\r\n"

	src := &engine.VCardSource{Path: writeVCF(t, vcf)}
	contacts, err := src.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, contacts)
	assert.ErrorIs(t, err, engine.ErrEmptyName)
	assert.Contains(t, err.Error(), config.ErrVCardNoName)

	var vErr *engine.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, vErr.Index)
}

func TestVCardSource_Load_EmptyFile(t *testing.T) {
	src := &engine.VCardSource{Path: writeVCF(t, "")}
	contacts, err := src.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.Empty(t, engine.BuildSections(contacts, "anything"))
}

func TestVCardSource_Load_Errors(t *testing.T) {
	_, err := (&engine.VCardSource{}).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, config.ErrLocalPathEmpty, err.Error())

	_, err = (&engine.VCardSource{Path: filepath.Join(t.TempDir(), "missing.vcf")}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeContacts_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.DecodeContacts(ctx, strings.NewReader("BEGIN:VCARD\r\nFN:Joe\r\nEND:VCARD\r\n"), "test")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadContacts_VCardEndToEnd(t *testing.T) {
	vcf := "BEGIN:VCARD\r\nVERSION:3.0\r\nN:Nickols;Jack;;;\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jack\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:3.0\r\nN:Pit;Alex;;;\r\nEND:VCARD\r\n"

	contacts, err := engine.LoadContacts(context.Background(), &engine.VCardSource{Path: writeVCF(t, vcf)})
	require.NoError(t, err)

	groups := engine.BuildSections(contacts, "ck nic")
	require.Len(t, groups, 1)
	assert.Equal(t, "J", groups[0].Letter)
	require.Len(t, groups[0].Contacts, 1)
	assert.Equal(t, "Nickols", groups[0].Contacts[0].LastNameOr(""))
}
