package tui

import (
	"github.com/charmbracelet/huh"

	"horizon/internal/constants"
	"horizon/internal/models"
	"horizon/internal/validation"
)

// EventFormModel backs the add-event form. Date stays a string until
// submission; huh validates it on every edit.
type EventFormModel struct {
	Name        string
	Date        string
	Emoji       string
	Category    models.Category
	Color       string
	Description string
}

func newEventForm(fm *EventFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[models.Category], 0, len(models.Categories))
	for _, c := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g. Hawaii Vacation 🏝️").
				Value(&fm.Name).
				Validate(validation.EventName),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(validation.EventDateString),
			huh.NewInput().
				Title("Emoji").
				Placeholder(constants.DefaultEmoji).
				Value(&fm.Emoji),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Theme Color").
				Options(colorOptions()...).
				Value(&fm.Color),
			huh.NewText().
				Title("Description").
				Placeholder("Add some details...").
				Lines(3).
				Value(&fm.Description),
		),
	)
}

// ConfigFormModel backs the widget customization form.
type ConfigFormModel struct {
	Theme       models.Theme
	AccentColor string
	ShowSeconds bool
	CompactMode bool
	FontSize    models.FontSize
}

func newConfigForm(fm *ConfigFormModel) *huh.Form {
	themeOptions := make([]huh.Option[models.Theme], 0, len(models.Themes))
	for _, t := range models.Themes {
		themeOptions = append(themeOptions, huh.NewOption(string(t), t))
	}
	sizeOptions := make([]huh.Option[models.FontSize], 0, len(models.FontSizes))
	for _, s := range models.FontSizes {
		sizeOptions = append(sizeOptions, huh.NewOption(string(s), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Theme]().
				Title("Visual Style").
				Options(themeOptions...).
				Value(&fm.Theme),
			huh.NewSelect[string]().
				Title("Accent Color").
				Options(colorOptions()...).
				Value(&fm.AccentColor),
			huh.NewConfirm().
				Title("Show Progress Bar").
				Value(&fm.ShowSeconds),
			huh.NewConfirm().
				Title("Compact Mode").
				Value(&fm.CompactMode),
			huh.NewSelect[models.FontSize]().
				Title("Font Size").
				Options(sizeOptions...).
				Value(&fm.FontSize),
		),
	)
}

func colorOptions() []huh.Option[string] {
	names := []string{
		"Red", "Orange", "Amber", "Emerald", "Cyan",
		"Blue", "Indigo", "Violet", "Fuchsia", "Pink",
	}
	options := make([]huh.Option[string], 0, len(constants.Palette))
	for i, c := range constants.Palette {
		options = append(options, huh.NewOption(names[i]+" "+c, c))
	}
	return options
}
