package ui

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// ContactsApp encapsulates the UI state, preferences and the search pipeline.
type ContactsApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	// Source overrides the source configured in preferences when non-nil.
	Source engine.ContactSource

	SupportedLanguages []string

	Bridge *SearchBridge
	List   *ContactList
	Search *SearchEntry

	sections       Sections
	title          *canvas.Text
	countLabel     *widget.Label
	settingsWindow fyne.Window
}

// NewContactsApp constructs the application and wires dependencies.
// A nil src means the source is resolved from preferences on every load.
func NewContactsApp(a fyne.App, ctx context.Context, src engine.ContactSource) *ContactsApp {
	app := &ContactsApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Source:             src,
		SupportedLanguages: config.SupportedLanguages,
		List:               NewContactList(),
		Search:             NewSearchEntry(),
	}
	app.Bridge = NewSearchBridge(app.showSections)
	app.Search.OnChanged = app.Bridge.QueryChanged
	app.Search.OnCleared = app.Bridge.Cleared
	return app
}

// Run loads the contacts and blocks in the UI loop.
func (app *ContactsApp) Run() {
	app.SetupI18n()
	app.BuildWindow()

	// The initial render is a build with no query.
	_ = app.ReloadContacts()

	app.Window.Show()
	app.App.Run()
}

// BuildWindow creates the contacts window: title, search field, separator and list.
func (app *ContactsApp) BuildWindow() fyne.Window {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))
	w.SetMaster()

	app.title = canvas.NewText(app.GetMsg(config.TKeyWinTitle), theme.Color(theme.ColorNameForeground))
	app.title.TextSize = config.TitleTextSize
	app.title.TextStyle = fyne.TextStyle{Bold: true}

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)
	settingsBtn.Importance = widget.LowImportance

	app.Search.PlaceHolder = app.GetMsg(config.TKeySearchHint)

	separator := canvas.NewRectangle(theme.Color(theme.ColorNameSeparator))
	separator.SetMinSize(fyne.NewSize(0, config.SeparatorHeight))

	app.countLabel = widget.NewLabel("")
	app.countLabel.Alignment = fyne.TextAlignCenter
	app.countLabel.TextStyle = fyne.TextStyle{Italic: true}

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, app.title),
		app.Search,
		separator,
	)

	w.SetContent(container.NewBorder(container.NewPadded(header), app.countLabel, nil, nil, app.List.List))
	w.Canvas().Focus(app.Search)

	app.Window = w
	return w
}

// ReloadContacts loads the full contact set and rebuilds with the current query.
// On failure the previously displayed result stays in place.
func (app *ContactsApp) ReloadContacts() error {
	src := app.Source
	if src == nil {
		var err error
		if src, err = app.sourceFromPreferences(); err != nil {
			app.reportLoadError(err)
			return err
		}
	}

	ctx, cancel := context.WithTimeout(app.Ctx, config.LoadTimeout)
	defer cancel()

	contacts, err := engine.LoadContacts(ctx, src)
	if err != nil {
		app.reportLoadError(err)
		return err
	}

	app.Bridge.SetContacts(contacts)
	return nil
}

// sourceFromPreferences resolves the contact source from saved settings.
func (app *ContactsApp) sourceFromPreferences() (engine.ContactSource, error) {
	mode := app.Preferences.StringWithFallback(config.PrefSourceMode, config.DefaultSourceMode)
	return engine.NewSource(mode, app.Preferences.String(config.PrefLocalPath))
}

func (app *ContactsApp) reportLoadError(err error) {
	slog.Error(config.ErrSourceLoad,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)

	if app.Window != nil {
		title := app.GetMsg(config.TKeyTitleLoadErr)
		if title == config.TKeyTitleLoadErr {
			title = config.TitleLoadError
		}
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), app.Window)
	}
}

// showSections is the consumer side of the bridge: it swaps the displayed result.
func (app *ContactsApp) showSections(sections Sections) {
	app.sections = sections
	app.List.SetSections(sections)
	app.updateCount(sections.TotalRows())
}

// updateCount refreshes the footer with the number of visible contacts.
func (app *ContactsApp) updateCount(count int) {
	if app.countLabel == nil {
		return
	}
	app.countLabel.SetText(app.countText(count))
}

func (app *ContactsApp) countText(count int) string {
	if count == 0 {
		return app.GetMsg(config.TKeyLblNoResults)
	}

	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyLblContactCnt,
			TemplateData: map[string]interface{}{"Count": count},
			PluralCount:  count,
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackContactCount, count)
}

// RefreshLabels re-applies translated strings after a language change.
func (app *ContactsApp) RefreshLabels() {
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	if app.title != nil {
		app.title.Text = app.GetMsg(config.TKeyWinTitle)
		app.title.Refresh()
	}
	app.Search.PlaceHolder = app.GetMsg(config.TKeySearchHint)
	app.Search.Refresh()
	app.updateCount(app.sections.TotalRows())
}
