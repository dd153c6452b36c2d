package cli

import (
	"fmt"
	"time"

	"horizon/internal/tui/components/widget"
)

// NextCmd prints the widget rendering of the next upcoming event, the
// same output the home-screen preview shows.
type NextCmd struct{}

func (c *NextCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	now := time.Now()
	next := repo.NextUpcoming(now)
	cfg := ctx.Store.LoadWidgetConfig()

	fmt.Println(widget.Render(next, cfg, now))
	return nil
}
