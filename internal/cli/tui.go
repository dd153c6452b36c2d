package cli

import (
	"horizon/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}
	return tui.Run(repo, ctx.Store, ctx.Gateway())
}
