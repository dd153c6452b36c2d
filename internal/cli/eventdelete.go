package cli

import "fmt"

type EventDeleteCmd struct {
	ID string `arg:"" help:"ID of the event to delete."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	event, ok := repo.Get(c.ID)
	if !ok {
		return fmt.Errorf("no event with ID %s", c.ID)
	}
	if err := repo.Remove(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted event: %s\n", event.Name)
	return nil
}
