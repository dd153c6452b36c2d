package constants

// Palette is the suggested set of theme colors for events and the
// widget accent. Events may carry any hex color; these are the ones the
// forms offer.
var Palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#10b981", "#06b6d4",
	"#3b82f6", "#6366f1", "#8b5cf6", "#d946ef", "#ec4899",
}

// DefaultAccentColor is the widget accent used until the user picks one.
const DefaultAccentColor = "#6366f1"

// Taglines rotate on the welcome screen.
var Taglines = []string{
	"Your next big adventure is just around the corner!",
	"Moments turn into memories, and memories last a lifetime.",
	"The best part of travel is the anticipation.",
	"Make every countdown count!",
	"Life is a journey, enjoy the stops along the way.",
}

// Country holds an entry of the global-explorer country picker.
type Country struct {
	Name string
	Code string
	Flag string
}

// Countries offered on the global holidays screen.
var Countries = []Country{
	{Name: "United States", Code: "US", Flag: "🇺🇸"},
	{Name: "United Kingdom", Code: "GB", Flag: "🇬🇧"},
	{Name: "Japan", Code: "JP", Flag: "🇯🇵"},
	{Name: "Brazil", Code: "BR", Flag: "🇧🇷"},
	{Name: "France", Code: "FR", Flag: "🇫🇷"},
	{Name: "India", Code: "IN", Flag: "🇮🇳"},
	{Name: "Australia", Code: "AU", Flag: "🇦🇺"},
	{Name: "Canada", Code: "CA", Flag: "🇨🇦"},
	{Name: "South Korea", Code: "KR", Flag: "🇰🇷"},
	{Name: "Germany", Code: "DE", Flag: "🇩🇪"},
}
