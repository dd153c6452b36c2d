package models

import "horizon/internal/constants"

// Theme is the widget's visual style.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeGlass Theme = "glass"
)

// Themes lists the valid widget themes, in form order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeGlass}

// FontSize is the widget's countdown text size.
type FontSize string

const (
	FontSizeSM   FontSize = "sm"
	FontSizeBase FontSize = "base"
	FontSizeLG   FontSize = "lg"
	FontSizeXL   FontSize = "xl"
)

// FontSizes lists the valid sizes, in form order.
var FontSizes = []FontSize{FontSizeSM, FontSizeBase, FontSizeLG, FontSizeXL}

// WidgetConfig holds the home-screen widget preferences. Exactly one
// instance exists per installation and it is overwritten wholesale on
// every change, never field-merged.
type WidgetConfig struct {
	Theme       Theme    `json:"theme"`
	AccentColor string   `json:"accentColor"`
	ShowSeconds bool     `json:"showSeconds"`
	CompactMode bool     `json:"compactMode"`
	FontSize    FontSize `json:"fontSize"`
}

// DefaultWidgetConfig is the configuration used until the user saves
// preferences of their own.
func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		Theme:       ThemeGlass,
		AccentColor: constants.DefaultAccentColor,
		ShowSeconds: false,
		CompactMode: false,
		FontSize:    FontSizeBase,
	}
}
