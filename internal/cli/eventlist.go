package cli

import (
	"fmt"
	"time"

	"horizon/internal/constants"
	"horizon/internal/countdown"
)

type EventListCmd struct{}

func (c *EventListCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	events := repo.SortedByDate()
	if len(events) == 0 {
		fmt.Println("No events yet. Add one with 'horizon event add'.")
		return nil
	}

	now := time.Now()
	fmt.Printf("Events (%d):\n", len(events))
	for _, e := range events {
		remaining := countdown.Until(e.Date, now)
		fmt.Printf("  %s %-24s %s  %3dd %2dh  [%s]  %s\n",
			e.Emoji,
			e.Name,
			e.Date.Format(constants.DateFormat),
			remaining.Days,
			remaining.Hours,
			e.Category,
			e.ID,
		)
	}
	return nil
}
