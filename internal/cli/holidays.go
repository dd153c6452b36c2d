package cli

import (
	"context"
	"fmt"
	"strings"
)

type HolidaysCmd struct {
	Country string `arg:"" help:"Country name, e.g. 'Japan'."`
	Import  bool   `short:"i" help:"Import the returned holidays as events."`
}

func (c *HolidaysCmd) Validate() error {
	if strings.TrimSpace(c.Country) == "" {
		return fmt.Errorf("country cannot be empty")
	}
	return nil
}

func (c *HolidaysCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	holidays := ctx.Gateway().PublicHolidays(context.Background(), c.Country)
	if len(holidays) == 0 {
		fmt.Printf("No holidays found for %s.\n", c.Country)
		return nil
	}

	fmt.Printf("Public holidays for %s:\n", c.Country)
	for _, h := range holidays {
		fmt.Printf("  %s %-28s %s  %s\n", h.Emoji, h.Name, h.Date, h.Description)
		if c.Import {
			if _, ok := repo.ImportSuggestion(h); ok {
				fmt.Printf("    ✓ added\n")
			}
		}
	}
	return nil
}
