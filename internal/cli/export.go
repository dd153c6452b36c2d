package cli

import (
	"fmt"
	"os"

	"horizon/internal/export"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file. Writes to stdout when omitted." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	events := repo.SortedByDate()
	if len(events) == 0 {
		return fmt.Errorf("nothing to export, no events stored")
	}

	if c.Out == "" {
		return export.Write(os.Stdout, events)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Out, err)
	}
	defer f.Close()

	if err := export.Write(f, events); err != nil {
		return err
	}
	fmt.Printf("Exported %d events to %s\n", len(events), c.Out)
	return nil
}
