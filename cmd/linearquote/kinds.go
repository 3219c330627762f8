package main

import (
	"fmt"

	"github.com/tdex-network/linear-pool/pkg/marketmaking"
	"github.com/urfave/cli/v2"
)

var kinds = cli.Command{
	Name:   "kinds",
	Usage:  "list the supported quote kinds",
	Action: kindsAction,
}

func kindsAction(ctx *cli.Context) error {
	for _, kind := range marketmaking.QuoteKinds() {
		if _, err := fmt.Fprintln(ctx.App.Writer, kind); err != nil {
			return err
		}
	}
	return nil
}
