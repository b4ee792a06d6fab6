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
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"
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
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagVCF          = "vcf"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescVCF      = "Load contacts from this vCard file instead of the configured source"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefLanguage   = "language"
	PrefSourceMode = "source_mode"
	PrefLocalPath  = "local_path"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "ru"}

// -----------------------------------------------------------------------------
// UI Contacts Window Constants
// -----------------------------------------------------------------------------

const (
	// Window Dimensions
	ContactsWinWidth    = 420
	ContactsWinHeight   = 720
	SettingsWindowWidth = 520

	// Row and section header heights are fixed; nothing about a contact
	// changes them.
	RowHeight           = 60
	SectionHeaderHeight = 40

	// Header chrome
	TitleTextSize   = 30
	SeparatorHeight = 2
	PhotoSize       = 50

	// Placeholders
	LastNamePlaceholder = ""
	TablePlaceholder    = "Cell Content"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeySearchHint    = "search_placeholder"
	TKeyLblNoResults  = "lbl_no_results"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblSource     = "lbl_source"
	TKeyModeSample    = "mode_sample"
	TKeyModeLocal     = "mode_local"
	TKeyBtnBrowse     = "btn_browse"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblFooter     = "lbl_footer"
	TKeyTitleLoadErr  = "title_load_error"
	TKeyLblContactCnt = "lbl_contact_count" // Requires Count

	// Validation Errors (UI)
	TKeyErrPathReq = "err_path_required"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeSample  = "sample"
	SourceModeLocal   = "local"
	DefaultSourceMode = SourceModeSample
	DefaultLanguage   = "en"
)

// -----------------------------------------------------------------------------
// Standards: vCard
// -----------------------------------------------------------------------------

const (
	VCardFN    = "FN"
	VCardPhoto = "PHOTO"

	VCardParamEncoding = "ENCODING"
	VCardEncodingB     = "b"
	VCardEncodingB64   = "base64"
	DataURIPrefix      = "data:"
	DataURIBase64      = ";base64,"

	// NameSeparator joins a first and last name for matching and splits a
	// formatted name when no structured name is present.
	NameSeparator = " "

	// PhotoResourceName is unique per file and card; Fyne caches images by resource name.
	PhotoResourceName = "%s-photo-%d"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Limits
// -----------------------------------------------------------------------------

const (
	// MaxVCardFileSize bounds how much of a local vCard file is decoded.
	MaxVCardFileSize = 64 * 1024 * 1024 // 64MB

	// LoadTimeout bounds contact source loading at startup and after a settings change.
	LoadTimeout = 30 * time.Second
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: local path is empty"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrEmptyName      = "contact name is empty"
	ErrInvalidContact = "invalid contact"
	ErrSourceLoad     = "failed to load contacts"
	ErrSourceMissing  = "internal error: contact source is not initialized"
	ErrVCardOpen      = "failed to open vCard file"
	ErrVCardTooLarge  = "vCard file exceeds size limit"
	ErrVCardNoName    = "vCard has no usable name"
	ErrPhotoDecode    = "failed to decode vCard photo"
	ErrRowRange       = "row index out of range"
	ErrSectionRange   = "section index out of range"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedPhoto   = "Skipping undecodable photo"
	MsgContactsLoaded = "Contacts loaded"
	MsgSearchChanged  = "Search query changed"
	MsgSearchCleared  = "Search query cleared"
	MsgSectionsBuilt  = "Sections rebuilt"
	MsgOpenSettings   = "Opening settings window"
	MsgSaveSettings   = "Saving preferences"
	MsgSourceOverride = "Contact source overridden from command line"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackContactCount = "%d contacts"
	TitleLoadError       = "Load Error"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyMode      = "mode"
	LogKeyPath      = "path"
	LogKeyCount     = "count"
	LogKeySections  = "sections"
	LogKeyQueryLen  = "query_len"
	LogKeyIndex     = "index"
	LogKeyName      = "name"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompSearch = "search"
	CompSource = "source"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
