package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
	"github.com/urfave/cli/v2"
)

var nominal = cli.Command{
	Name:  "nominal",
	Usage: "convert a main token amount to nominal space or back",
	Flags: withParamsFlags(
		&cli.StringFlag{
			Name:  "to",
			Usage: "the real amount to convert to nominal",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "the nominal amount to convert to real",
		},
	),
	Action: nominalAction,
}

func nominalAction(ctx *cli.Context) error {
	if ctx.IsSet("to") == ctx.IsSet("from") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	params, err := getParams(ctx)
	if err != nil {
		return err
	}

	convert := formula.ToNominal
	name := "to"
	if ctx.IsSet("from") {
		convert = formula.FromNominal
		name = "from"
	}

	amount, err := parseAmount(ctx, name)
	if err != nil {
		return err
	}
	result, err := convert(amount, params)
	if err != nil {
		return err
	}

	return printAmount(ctx, result)
}

func printAmount(ctx *cli.Context, amount decimal.Decimal) error {
	str, err := formatAmount(ctx, amount)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, str)
	return err
}
