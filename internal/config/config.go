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

// UserAgent identifies the HTTP client when fetching remote vCard sources.
var UserAgent = "Go-Weton/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Weton"
	AppID          = "com.github.wetonku.go-weton"
	KeyringService = "com.github.wetonku.go-weton"
	LogFileName    = "app.log"
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
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagAddr         = "addr"
	FlagPort         = "port"
	FlagEnvFile      = "env-file"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescAddr     = "Bind address for the HTTP API"
	FlagDescPort     = "Port for the HTTP API"
	FlagDescEnvFile  = "Path to an optional .env file"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvAddr         = "WETON_ADDR"
	EnvPort         = "WETON_PORT"
	EnvLanguage     = "WETON_LANG"
	EnvVCardURL     = "WETON_VCARD_URL"
	EnvVCardPath    = "WETON_VCARD_PATH"
	EnvVCardUser    = "WETON_VCARD_USER"
	EnvVCardPass    = "WETON_VCARD_PASS"
	EnvSyncMinutes  = "WETON_SYNC_MIN"
	EnvReminder     = "WETON_REMINDER"
	DefaultEnvFile  = ".env"
	DefaultBindAddr = "127.0.0.1"
	DefaultPort     = "18090"
)

// -----------------------------------------------------------------------------
// Source Modes (vCard contact sync)
// -----------------------------------------------------------------------------

const (
	SourceModeNone  = "none"
	SourceModeLocal = "local"
	SourceModeWeb   = "web"
)

// SupportedLanguages defines the list of available API languages (ISO 639-1).
var SupportedLanguages = []string{"id", "en"}

// DefaultLanguage is Indonesian; the Weton system is Javanese/Indonesian first.
const DefaultLanguage = "id"

// -----------------------------------------------------------------------------
// Calendrical & Business Defaults
// -----------------------------------------------------------------------------

const (
	// MinBirthYear is the earliest birth year the validator accepts.
	MinBirthYear = 1900

	// MaxAgeYears caps plausible ages; anything older is rejected as input error.
	MaxAgeYears = 150

	// LifeExpectancyYears is the reference expectancy used for the
	// life-percentage figure. A display reference, not an actuarial claim.
	LifeExpectancyYears = 80

	// DaysPerYear is the mean Gregorian year length used for expectancy math.
	DaysPerYear = 365.25

	// PasaranCycleDays is the length of the Javanese market-day cycle.
	PasaranCycleDays = 5

	// SelapanCycleDays is the full Weton period: lcm(7-day week, 5-day pasaran).
	SelapanCycleDays = 35

	// SelapanScanBound bounds the linear scan for a first Weton match.
	// Any (day, pasaran) pair recurs within 35 days; 40 leaves a margin.
	SelapanScanBound = 40

	// DefaultRetirementAge follows the common Indonesian private-sector age.
	DefaultRetirementAge = 55

	// DefaultSyncMinutes is the contact resync interval.
	DefaultSyncMinutes = 60
	DisabledInterval   = 0

	// Biological estimate constants (resting averages, adults).
	RestingHeartRatePerMin = 72
	BreathsPerMin          = 16
	SleepFractionOfDay     = 3 // sleep ≈ 1/3 of each day (8 hours)

	// UniverseAgeYears anchors the cosmic-scale compression estimate.
	UniverseAgeYears = 13.8e9

	// UIDSalt seeds deterministic UID generation for calendar events.
	UIDSalt = "go-weton-v1-"
)

// WetonAnchor is the fixed epoch of the pasaran cycle: January 1, 1900,
// a Monday, defined as Pahing.
var WetonAnchor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// IndependenceDate is the Indonesian proclamation of independence,
// the reference point of the independence-percentage estimate.
var IndependenceDate = time.Date(1945, time.August, 17, 0, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Weton//Engine//EN"
	ICalCalName   = "Weton"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goweton"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & UID Generation
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted for API input and vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// DefaultLeapYear is the fallback year for year-less vCard dates (--02-29).
	DefaultLeapYear = 2000

	MinPort = 1
	MaxPort = 65535

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Routes
// -----------------------------------------------------------------------------

const (
	RouteHealth       = "/healthz"
	RouteCalendar     = "/calendar.ics"
	RouteAPIPrefix    = "/api/v1"
	RouteAge          = "/age"
	RouteWeton        = "/weton"
	RouteZodiac       = "/zodiac"
	RouteShio         = "/shio"
	RouteHaul         = "/haul"
	RouteHaulICS      = "/haul.ics"
	RouteBirthdayICS  = "/birthday.ics"
	RouteSpecialDates = "/special-dates"
	RouteMilestones   = "/milestones"
	RouteWorkingDays  = "/working-days"
	RouteRetirement   = "/retirement"
	RouteEstimates    = "/estimates"
	RouteFacts        = "/facts"
)

// -----------------------------------------------------------------------------
// HTTP Query Parameters
// -----------------------------------------------------------------------------

const (
	ParamBirth    = "birth"
	ParamDate     = "date"
	ParamStart    = "start"
	ParamEnd      = "end"
	ParamFrom     = "from"
	ParamDay      = "day"
	ParamPasaran  = "pasaran"
	ParamCount    = "count"
	ParamAge      = "age"
	ParamReminder = "reminder"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: local vCard path is empty"
	ErrWebURLEmpty    = "configuration error: vCard web URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrDataAsset      = "failed to load embedded data asset"
	ErrHolidayTable   = "malformed holiday table entry"
)

// -----------------------------------------------------------------------------
// Validation Messages (User-Facing, carried by engine.ValidationError)
// -----------------------------------------------------------------------------

const (
	ErrBirthDateFormat = "birth date is not a valid calendar date (expected YYYY-MM-DD)"
	ErrBirthDateFuture = "birth date cannot be in the future"
	ErrBirthYearTooOld = "birth year must be 1900 or later"
	ErrAgeImplausible  = "birth date implies an age over 150 years"
	ErrNotLeapDay      = "birth date is not February 29"
	ErrUnknownPasaran  = "unknown pasaran name"
	ErrUnknownDayName  = "unknown day name"
	ErrRangeInverted   = "end date must not precede start date"
	ErrRetirementAge   = "retirement age must exceed the current age"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgSyncStarted   = "Contact sync started..."
	MsgSyncSuccess   = "Contact sync completed successfully"
	MsgSyncFailed    = "Contact sync failed"
	MsgWorkerStart   = "Background sync worker started"
	MsgWorkerStop    = "Sync worker stopping due to context cancellation"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBdayToday     = "Birthday found today"
	MsgDataLoaded    = "Reference data loaded"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyAddr      = "addr"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeyHolidays  = "holidays"
	LogKeyFacts     = "facts"
	LogKeyReleases  = "releases"

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
	CompEngine  = "engine"
	CompExport  = "export"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompWorker  = "worker"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompData    = "data"
	CompConfig  = "config"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtHaul         = "event_haul"          // Requires Title
	TKeyErrValidation   = "err_validation"
	TKeyUnitYears       = "unit_years"
	TKeyUnitMonths      = "unit_months"
	TKeyUnitDays        = "unit_days"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackName         = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// are found, so feed consumers never see an invalid calendar.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)
