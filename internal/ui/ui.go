package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-worldclock/internal/catalog"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
	"github.com/tartampluch/go-worldclock/internal/store"
)

//go:embed Icon.png
var appIconData []byte

// WorldClockApp encapsulates the UI state, preferences, and the injected
// store, catalog, and clock.
type WorldClockApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store   store.Store     // Injected; an in-memory variant exists for tests.
	Catalog []catalog.Entry // Read-only; empty when dataset decoding failed.
	Clock   engine.Clock    // Injected clock for testability.

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayAddItem      *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string

	// Records State
	RecordsMut sync.RWMutex
	Records    []engine.TimezoneRecord

	clockList      *widget.List
	emptyLabel     *widget.Label
	addWindow      fyne.Window
	settingsWindow fyne.Window
	detailWindows  map[string]fyne.Window
}

// NewWorldClockApp constructs the application and wires dependencies.
func NewWorldClockApp(a fyne.App, ctx context.Context, st store.Store, entries []catalog.Entry) *WorldClockApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &WorldClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              st,
		Catalog:            entries,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		Records:            make([]engine.TimezoneRecord, 0),
		detailWindows:      make(map[string]fyne.Window),
	}
}

// Run launches the application services and the main UI loop.
func (app *WorldClockApp) Run() {
	app.SetupI18n()
	app.reloadRecords()
	app.buildClocksWindow()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
		app.updateTrayStatus(app.recordCount())
	} else {
		slog.Warn(config.ErrTrayNotSupp,
			config.LogKeyComponent, config.CompUI)
	}

	go app.clockTicker()

	app.Window.Show()
	app.App.Run()
}

// clockTicker drives the once-per-second refresh of the digital clock list.
// Analog detail windows run their own faster tickers.
func (app *WorldClockApp) clockTicker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.DigitalTickInterval)
	defer ticker.Stop()

	log.Info(config.MsgTickerStart, config.LogKeyInterval, config.DigitalTickInterval)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgTickerStop)
			return

		case <-ticker.C:
			app.refreshClockList()
		}
	}
}

// setupTrayMenu constructs the system tray menu.
func (app *WorldClockApp) setupTrayMenu() {
	// Status item doubles as a shortcut to the clocks window.
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.Window.Show()
		app.Window.RequestFocus()
	})

	app.TrayAddItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuAdd), func() {
		app.ShowAddWindow()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayAddItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *WorldClockApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayAddItem.Label = app.GetMsg(config.TKeyMenuAdd)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// updateTrayStatus updates the top menu item to show how many clocks exist.
func (app *WorldClockApp) updateTrayStatus(count int) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	var label string
	if count == 0 {
		label = app.GetMsg(config.TKeyTrayCountZero)
		if label == config.TKeyTrayCountZero {
			label = fmt.Sprintf(config.FallbackTrayCount, 0)
		}
	} else {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyTrayCount,
				TemplateData: map[string]interface{}{"Count": count},
				PluralCount:  count,
			})
			if err == nil {
				label = msg
			}
		}
		if label == "" {
			label = fmt.Sprintf(config.FallbackTrayCount, count)
		}
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// reloadRecords replaces the cached record list from the store.
// A list failure is logged and leaves the previous cache in place.
func (app *WorldClockApp) reloadRecords() {
	records, err := app.Store.List()
	if err != nil {
		slog.Error(config.ErrStoreList,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}

	app.RecordsMut.Lock()
	app.Records = records
	app.RecordsMut.Unlock()

	slog.Debug(config.MsgRecordsLoaded,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(records))
}

// recordCount returns the size of the cached record list.
func (app *WorldClockApp) recordCount() int {
	app.RecordsMut.RLock()
	defer app.RecordsMut.RUnlock()
	return len(app.Records)
}

// recordAt returns a copy of the cached record at index, if present.
func (app *WorldClockApp) recordAt(index int) (engine.TimezoneRecord, bool) {
	app.RecordsMut.RLock()
	defer app.RecordsMut.RUnlock()
	if index < 0 || index >= len(app.Records) {
		return engine.TimezoneRecord{}, false
	}
	return app.Records[index], true
}

// performAdd inserts a record and refreshes dependent views. A write failure
// is logged and the attempted mutation is simply not reflected; no retry,
// no user-facing error surface.
func (app *WorldClockApp) performAdd(rec engine.TimezoneRecord) {
	if err := app.Store.Insert(rec); err != nil {
		slog.Error(config.ErrStoreInsert,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyName, rec.Value,
			config.LogKeyError, err)
		return
	}

	slog.Info(config.MsgRecordAdded,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyID, rec.ID,
		config.LogKeyName, rec.Value,
		config.LogKeyOffset, rec.OffsetHours)

	app.reloadRecords()
	app.refreshClockList()
	app.updateTrayStatus(app.recordCount())
}

// performDelete removes a record permanently. Failures follow the same
// log-and-drop policy as performAdd.
func (app *WorldClockApp) performDelete(rec engine.TimezoneRecord) {
	if err := app.Store.Delete(rec); err != nil {
		slog.Error(config.ErrStoreDelete,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyID, rec.ID,
			config.LogKeyError, err)
		return
	}

	slog.Info(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyID, rec.ID,
		config.LogKeyName, rec.Value)

	if w, ok := app.detailWindows[rec.ID]; ok {
		w.Close()
	}

	app.reloadRecords()
	app.refreshClockList()
	app.updateTrayStatus(app.recordCount())
}
