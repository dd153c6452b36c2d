package cli

import (
	"fmt"

	"horizon/internal/models"
	"horizon/internal/validation"
)

type EventAddCmd struct {
	Name        string `arg:"" help:"Event name."`
	Date        string `short:"d" help:"Event date (YYYY-MM-DD)." required:""`
	Category    string `short:"c" help:"Category (Trip|Celebration|Holiday|Personal)." default:"Trip"`
	Color       string `help:"Theme color as #rrggbb. Random palette color when omitted."`
	Emoji       string `short:"e" help:"Display emoji."`
	Description string `help:"Optional description."`
}

func (c *EventAddCmd) Validate() error {
	if err := validation.EventName(c.Name); err != nil {
		return err
	}
	if err := validation.EventDateString(c.Date); err != nil {
		return err
	}
	if _, err := validation.Category(c.Category); err != nil {
		return err
	}
	if c.Color != "" {
		if err := validation.HexColor(c.Color); err != nil {
			return err
		}
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	date, err := validation.EventDate(c.Date)
	if err != nil {
		return err
	}
	category, err := validation.Category(c.Category)
	if err != nil {
		return err
	}
	color := c.Color
	if color == "" {
		color = models.RandomPaletteColor()
	}

	event := models.NewEvent(c.Name, date, c.Description, category, color, c.Emoji)
	if err := repo.Add(event); err != nil {
		return err
	}

	fmt.Printf("Added event: %s %s (ID: %s)\n", event.Emoji, event.Name, event.ID)
	return nil
}
