package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-contacts/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect *widget.Select
	modeSelect *widget.Select
	pathEntry  *widget.Entry
}

// ShowSettingsWindow displays the language and contact source settings.
// Only one settings window is open at a time.
func (app *ContactsApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)
	generalForm := widget.NewForm(itemLang)

	sourceCard := app.buildSourceCard(w, sw)

	saveAction := func() {
		if err := app.validateSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		generalForm,
		sourceCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the inputs pre-filled from preferences.
func (app *ContactsApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{
		langSelect: widget.NewSelect(app.SupportedLanguages, nil),
		modeSelect: widget.NewSelect([]string{
			app.GetMsg(config.TKeyModeSample),
			app.GetMsg(config.TKeyModeLocal),
		}, nil),
		pathEntry: widget.NewEntry(),
	}

	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	sw.pathEntry.SetText(app.Preferences.String(config.PrefLocalPath))
	sw.pathEntry.PlaceHolder = config.ExtVCF

	if app.Preferences.StringWithFallback(config.PrefSourceMode, config.DefaultSourceMode) == config.SourceModeLocal {
		sw.modeSelect.SetSelected(app.GetMsg(config.TKeyModeLocal))
	} else {
		sw.modeSelect.SetSelected(app.GetMsg(config.TKeyModeSample))
	}
	return sw
}

// buildSourceCard constructs the source selection UI. The file picker is only
// visible in local mode.
func (app *ContactsApp) buildSourceCard(w fyne.Window, sw *settingsWidgets) *widget.Card {
	browseBtn := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				sw.pathEntry.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
		d.Show()
	})

	localForm := container.NewBorder(nil, nil, nil, browseBtn, sw.pathEntry)

	updateVis := func(mode string) {
		if mode == app.GetMsg(config.TKeyModeLocal) {
			localForm.Show()
		} else {
			localForm.Hide()
		}
	}
	sw.modeSelect.OnChanged = updateVis
	updateVis(sw.modeSelect.Selected)

	return widget.NewCard(app.GetMsg(config.TKeyLblSource), "", container.NewVBox(sw.modeSelect, localForm))
}

// selectedMode maps the translated mode label back to its config value.
func (app *ContactsApp) selectedMode(sw *settingsWidgets) string {
	if sw.modeSelect.Selected == app.GetMsg(config.TKeyModeLocal) {
		return config.SourceModeLocal
	}
	return config.SourceModeSample
}

// validateSettings blocks saving local mode without a file.
func (app *ContactsApp) validateSettings(sw *settingsWidgets) error {
	if app.selectedMode(sw) == config.SourceModeLocal && sw.pathEntry.Text == "" {
		return errors.New(app.GetMsg(config.TKeyErrPathReq))
	}
	return nil
}

// saveSettings persists the preferences, re-translates the UI and reloads contacts.
func (app *ContactsApp) saveSettings(sw *settingsWidgets) {
	mode := app.selectedMode(sw)
	slog.Info(config.MsgSaveSettings,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyMode, mode)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefSourceMode, mode)
	app.Preferences.SetString(config.PrefLocalPath, sw.pathEntry.Text)

	// A command line override only lasts until the user picks a source.
	app.Source = nil

	app.UpdateLocalizer()
	app.RefreshLabels()
	_ = app.ReloadContacts()
}
