package config

import (
	"io/fs"
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

	// UIDNamespace seeds the name-based UUIDs used for exported contacts.
	UIDNamespace = "go-contacts-v1:"
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
	FlagConfig       = "config"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescConfig   = "Path to a TOML settings file"
	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// Commands (verbs typed at the prompt)
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdExit         = "exit"
	CmdClose        = "close"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdDelete       = "delete"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExport       = "export"
	CmdCalendar     = "calendar"
)

// -----------------------------------------------------------------------------
// Message IDs (user-facing texts, see internal/messages/locales)
// -----------------------------------------------------------------------------

const (
	MsgIDWelcome          = "welcome"
	MsgIDGreeting         = "greeting"
	MsgIDGoodbye          = "goodbye"
	MsgIDInvalidArguments = "invalid_arguments"
	MsgIDUnknownCommand   = "unknown_command"
	MsgIDContactNotFound  = "contact_not_found"
	MsgIDGenericError     = "generic_error"
	MsgIDContactAdded     = "contact_added"
	MsgIDContactUpdated   = "contact_updated"
	MsgIDContactChanged   = "contact_changed"
	MsgIDContactDeleted   = "contact_deleted"
	MsgIDPhoneExists      = "phone_exists"
	MsgIDContactsEmpty    = "contacts_empty"
	MsgIDBirthdayAdded    = "birthday_added"
	MsgIDBirthdayNotSet   = "birthday_not_set"
	MsgIDNoUpcoming       = "no_upcoming_birthdays"
	MsgIDUsageAdd         = "usage_add"
	MsgIDUsageChange      = "usage_change"
	MsgIDUsagePhone       = "usage_phone"
	MsgIDUsageAll         = "usage_all"
	MsgIDUsageDelete      = "usage_delete"
	MsgIDUsageAddBday     = "usage_add_birthday"
	MsgIDUsageShowBday    = "usage_show_birthday"
	MsgIDUsageBirthdays   = "usage_birthdays"
	MsgIDUsageExport      = "usage_export"
	MsgIDUsageCalendar    = "usage_calendar"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage     = "en"
	DefaultPrompt       = "Enter a command: "
	DefaultHorizonDays  = 7
	DefaultLogLevel     = "info"
	PhoneSeparator      = ", "
	DefaultVCardVersion = "4.0"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthdayIn accepts 1 or 2 digit day and month.
	DateFormatBirthdayIn = "2.1.2006"
	// DateFormatBirthday is the canonical, zero-padded rendering.
	DateFormatBirthday = "02.01.2006"
	// DateFormatISO is the vCard BDAY value layout.
	DateFormatISO = "2006-01-02"

	FormatRecord         = "%s: %s"
	FormatRecordBirthday = "%s: %s (birthday: %s)"
	FormatShowBirthday   = "%s: %s"
	FormatGreeting       = "%s %s: %s"
	FormatUsage          = "%s %s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Assistant//EN"
	ICalCalName = "Birthday greetings"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatUID     = "%s-%d@%s"
	FormatSummary = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidFormat    = "invalid format"
	ErrContactNotFound  = "contact not found"
	ErrInvalidArguments = "invalid arguments"
	ErrUnknownCommand   = "unknown command"
	ErrEmptyName        = "Name must not be empty"
	ErrDateFormat       = "Invalid date format. Use DD.MM.YYYY"
	ErrPhoneFormat      = "Phone number should contain only digits"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsUnknown  = "unknown settings keys"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrVCardEncode      = "failed to encode vCard data"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrInputRead        = "failed to read input"
	ErrOutputWrite      = "failed to write output"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, stopping shell"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgSettingsLoaded  = "Settings loaded"
	MsgRecordAdded     = "Record added"
	MsgRecordExists    = "Record already exists"
	MsgRecordMissing   = "Record not found"
	MsgRecordDeleted   = "Record deleted"
	MsgCommand         = "Command received"
	MsgCommandUnknown  = "Unknown command"
	MsgUpcomingScan    = "Upcoming birthdays computed"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgExportFinished  = "Export finished"
	MsgCalendarBuilt   = "Calendar generation successful"
	MsgShellStopped    = "Shell loop stopped"
	MsgHandlerRecover  = "Recovered from handler failure"
	MsgHandlerFallback = "Unrecognized handler error"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyCount     = "count"
	LogKeyHorizon   = "horizon_days"
	LogKeyReference = "reference_date"
	LogKeyLevel     = "log_level"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
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
	CompMain     = "main"
	CompBook     = "book"
	CompHandler  = "handler"
	CompShell    = "shell"
	CompExport   = "export"
	CompI18n     = "i18n"
	CompSettings = "settings"
)
