package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-worldclock/internal/config"
)

// ShowSettingsWindow displays the configuration dialog.
func (app *WorldClockApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	// --- General Section ---
	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	generalForm := widget.NewForm(itemLang)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(langSelect.Selected, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.SetFixedSize(true)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetOnClosed(func() { app.settingsWindow = nil })

	w.Show()
}

// saveSettings persists the selection and relocalizes the open UI.
func (app *WorldClockApp) saveSettings(language string, w fyne.Window) {
	slog.Info(config.MsgSavePrefs,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, language)

	app.Preferences.SetString(config.PrefLanguage, language)

	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	app.relocalizeClocksWindow()
	app.updateTrayStatus(app.recordCount())

	w.Close()
}

// relocalizeClocksWindow refreshes the translated parts of the main window
// after a language change.
func (app *WorldClockApp) relocalizeClocksWindow() {
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	if app.emptyLabel != nil {
		app.emptyLabel.SetText(app.GetMsg(config.TKeyLblEmptyList))
	}
	app.refreshClockList()
}
