package main

import (
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
	"github.com/urfave/cli/v2"
)

var invariant = cli.Command{
	Name:   "invariant",
	Usage:  "compute the invariant of a pool from its main and wrapped balances",
	Flags:  withParamsFlags(&mainFlag, &wrappedFlag),
	Action: invariantAction,
}

var rate = cli.Command{
	Name:   "rate",
	Usage:  "compute the value of one pool token in nominal main units",
	Flags:  withPoolFlags(),
	Action: rateAction,
}

func invariantAction(ctx *cli.Context) error {
	params, err := getParams(ctx)
	if err != nil {
		return err
	}
	balances, err := getBalances(ctx)
	if err != nil {
		return err
	}

	nominalMain, err := formula.ToNominal(balances.Main, params)
	if err != nil {
		return err
	}
	result, err := formula.CalcInvariant(nominalMain, balances.Wrapped, params)
	if err != nil {
		return err
	}

	return printAmount(ctx, result)
}

func rateAction(ctx *cli.Context) error {
	params, err := getParams(ctx)
	if err != nil {
		return err
	}
	balances, err := getBalances(ctx)
	if err != nil {
		return err
	}

	result, err := formula.CalcPoolRate(
		balances.Main, balances.Wrapped, balances.BptSupply, params,
	)
	if err != nil {
		return err
	}

	return printAmount(ctx, result)
}
