package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go World Clock"
	AppID       = "com.github.tartampluch.go-worldclock"
	LogFileName = "app.log"
	DBFileName  = "clocks.db"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and the local database.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app's cache and data directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWinWidth  = 480
	MainWinHeight = 420

	AddWinWidth  = 520
	AddWinHeight = 460

	SettingsWindowWidth = 420

	DetailWinWidth  = 340
	DetailWinHeight = 420

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle    = "win_title"
	TKeyWinAdd      = "win_add_title"
	TKeyWinSettings = "win_settings_title"

	TKeyMenuClocks   = "menu_clocks"
	TKeyMenuAdd      = "menu_add"
	TKeyMenuSettings = "menu_settings"

	TKeyTrayCount     = "tray_clock_count"      // Requires Count > 0
	TKeyTrayCountZero = "tray_clock_count_zero" // Explicit key for 0

	TKeyBtnAdd    = "btn_add"
	TKeyBtnSave   = "btn_save"
	TKeyBtnCancel = "btn_cancel"

	TKeyTabCatalog = "tab_catalog"
	TKeyTabCustom  = "tab_custom"
	TKeyPlhSearch  = "plh_search"

	TKeyLblName        = "lbl_name"
	TKeyLblAbbr        = "lbl_abbreviation"
	TKeyLblOffset      = "lbl_offset"
	TKeyHelpOffset     = "help_offset"
	TKeyLblDST         = "lbl_observes_dst"
	TKeyLblDescription = "lbl_description"
	TKeyLblRegions     = "lbl_regions"
	TKeyHelpRegions    = "help_regions"

	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblGeneral   = "lbl_general"
	TKeyLblFooter    = "lbl_footer"

	TKeyLblEmptyList = "lbl_empty_list"
	TKeyLblDaytime   = "lbl_daytime"
	TKeyLblNighttime = "lbl_nighttime"

	// Validation Errors (UI)
	TKeyErrOffsetNum = "err_offset_number"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// DigitalTickInterval drives the once-per-second refresh of the digital
	// clock list; HandTickInterval drives the continuous analog hands.
	DigitalTickInterval = 1 * time.Second
	HandTickInterval    = 100 * time.Millisecond

	// Day/night classification window: [DaytimeStartHour, DaytimeEndHour).
	// Fixed and cosmetic only; the DST flag on records is never consulted.
	DaytimeStartHour = 8
	DaytimeEndHour   = 18

	// Hand angle geometry (degrees clockwise from 12 o'clock).
	DegreesPerTick = 6.0  // one second or one minute on the dial
	DegreesPerHour = 30.0 // one hour on the dial

	HoursOnDial       = 12
	SecondsPerMinute  = 60.0
	MinutesPerHour    = 60.0
	FormatDigitalTime = "%02d:%02d"

	// Offset formatting. The fractional part is classified as exactly 0 or
	// exactly 30 minutes: only an offset fraction of precisely 0.5 renders
	// as ":30". Quarter-hour offsets render as ":00".
	FormatOffsetString = "%s%d:%s"
	OffsetSignPlus     = "+"
	OffsetSignMinus    = "-"
	OffsetMinutesNone  = "00"
	OffsetMinutesHalf  = "30"
	OffsetHalfHour     = 0.5

	// UTCIdentifierSeparator joins region identifiers into the single
	// delimited string stored in the database.
	UTCIdentifierSeparator = ", "
	RegionInputSeparator   = ","

	MarkerDay   = "☀"
	MarkerNight = "☾"
)

// -----------------------------------------------------------------------------
// Clock Face Layout
// -----------------------------------------------------------------------------

const (
	ClockFaceMinSize float32 = 220
	ClockFacePadding float32 = 10
	ClockFacePinSize float32 = 6

	HourHandRatio   float32 = 0.50
	MinuteHandRatio float32 = 0.72
	SecondHandRatio float32 = 0.85

	HourHandWidth   float32 = 4
	MinuteHandWidth float32 = 3
	SecondHandWidth float32 = 1
)

// -----------------------------------------------------------------------------
// Persistent Store
// -----------------------------------------------------------------------------

const (
	StoreTableName = "timezones"
	StoreListOrder = "description ASC"
	StoreMemoryDSN = ":memory:"

	// StoreMaxConns pins the pool to a single connection: all mutations are
	// serialized through one writer, and an in-memory SQLite database only
	// exists on the connection that created it.
	StoreMaxConns = 1
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrStoreOpen     = "failed to open timezone store"
	ErrStoreMigrate  = "failed to migrate timezone schema"
	ErrStoreList     = "failed to list timezone records"
	ErrStoreInsert   = "failed to insert timezone record"
	ErrStoreDelete   = "failed to delete timezone record"
	ErrStoreConn     = "failed to access store connection"
	ErrCatalogDecode = "failed to decode bundled timezone dataset"
	ErrCatalogField  = "dataset entry has a missing or mistyped field"
	ErrOffsetParse   = "offset is not a number"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrConfigDir     = "could not determine user config dir"
	ErrCreateDir     = "could not create app directory"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrTrayNotSupp   = "system tray not supported on this platform/driver"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgStoreOpened     = "Timezone store opened"
	MsgCatalogReady    = "Timezone catalog loaded"
	MsgCatalogEmpty    = "Catalog unavailable, search disabled"
	MsgCatalogFiltered = "Catalog filtered"
	MsgTickerStart     = "Clock ticker started"
	MsgTickerStop      = "Clock ticker stopping due to context cancellation"
	MsgRecordAdded     = "Timezone record added"
	MsgRecordDeleted   = "Timezone record deleted"
	MsgRecordsLoaded   = "Timezone records reloaded"
	MsgOpenClocksWin   = "Opening clocks window"
	MsgOpenAddWin      = "Opening add window"
	MsgOpenDetailWin   = "Opening clock detail window"
	MsgSavePrefs       = "Saving preferences"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"

	FallbackTrayLabel = "Go World Clock"
	FallbackTrayCount = "Go World Clock (%d clocks)"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyID        = "id"
	LogKeyName      = "name"
	LogKeyOffset    = "offset_hours"
	LogKeyQuery     = "query"
	LogKeyMatches   = "matches"
	LogKeyCount     = "count"
	LogKeyEntries   = "entries"
	LogKeyInterval  = "interval"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUIAdd   = "ui_add"
	CompUISet   = "ui_settings"
	CompEngine  = "engine"
	CompCatalog = "catalog"
	CompStore   = "store"
	CompWorker  = "worker"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
