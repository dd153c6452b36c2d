package cli

import (
	"context"
	"fmt"
	"strings"
)

type IdeasCmd struct {
	Event string `arg:"" help:"Event ID or name."`
}

func (c *IdeasCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	event, ok := repo.Get(c.Event)
	if !ok {
		// Fall back to a case-insensitive name match.
		for _, e := range repo.All() {
			if strings.EqualFold(e.Name, c.Event) {
				event, ok = e, true
				break
			}
		}
	}
	if !ok {
		return fmt.Errorf("no event matching %q", c.Event)
	}

	ideas := ctx.Gateway().CelebrationIdeas(context.Background(), event.Name)

	fmt.Printf("Celebration ideas for %s:\n", event.Name)
	for _, idea := range ideas {
		fmt.Printf("  • %s: %s\n", idea.Title, idea.Description)
	}
	return nil
}
