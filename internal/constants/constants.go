package constants

import "time"

// AppName is the application identifier used for the keyring service,
// log prefix, and default config directory.
const AppName = "horizon"

// DefaultKeyringUser is the account name under which the AI credential
// is stored in the OS keyring.
const DefaultKeyringUser = "api-credential"

// APIKeyEnv is the environment fallback for the AI credential when the
// OS keyring is unavailable or empty.
const APIKeyEnv = "HORIZON_API_KEY"

const (
	// DateFormat is the calendar-date form accepted from forms and the
	// AI gateway.
	DateFormat = "2006-01-02"
	// DisplayDateFormat is how event dates are shown to the user.
	DisplayDateFormat = "Monday, January 2, 2006"
)

// Persisted document keys. Each key maps to one independent JSON record.
const (
	EventsKey       = "holiday_horizon_data"
	WidgetConfigKey = "holiday_horizon_config"
)

// SchemaVersion tags persisted payloads so a future layout change can be
// detected instead of silently misread.
const SchemaVersion = 1

// DefaultEmoji is used when an event is created without a glyph.
const DefaultEmoji = "🎉"

// CountdownTickInterval is the display refresh cadence for live
// countdowns. Countdowns only change once per hour, so one minute is
// more than enough.
const CountdownTickInterval = time.Minute
