package main

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/internal/config"
	"github.com/tdex-network/linear-pool/pkg/marketmaking"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var (
	unitsFlag = cli.BoolFlag{
		Name:  "units",
		Usage: "amounts and balances are raw 18-decimal integers",
	}

	feeFlag = cli.StringFlag{
		Name:  "fee",
		Usage: "fee fraction in range [0, 1), defaults to config",
	}
	rateFlag = cli.StringFlag{
		Name:  "rate",
		Usage: "exchange rate from wrapped to main asset, defaults to config",
	}
	lowerTargetFlag = cli.StringFlag{
		Name:  "lower_target",
		Usage: "lower target of the curve, defaults to config",
	}
	upperTargetFlag = cli.StringFlag{
		Name:  "upper_target",
		Usage: "upper target of the curve, defaults to config",
	}

	mainFlag = cli.StringFlag{
		Name:  "main",
		Usage: "main token balance of the pool",
		Value: "0",
	}
	wrappedFlag = cli.StringFlag{
		Name:  "wrapped",
		Usage: "wrapped token balance of the pool",
		Value: "0",
	}
	supplyFlag = cli.StringFlag{
		Name:  "supply",
		Usage: "virtual supply of the pool token",
		Value: "0",
	}

	paramsFlags   = []cli.Flag{&feeFlag, &rateFlag, &lowerTargetFlag, &upperTargetFlag}
	balancesFlags = []cli.Flag{&mainFlag, &wrappedFlag, &supplyFlag}
)

func withParamsFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, paramsFlags...)
}

func withPoolFlags(flags ...cli.Flag) []cli.Flag {
	return withParamsFlags(append(flags, balancesFlags...)...)
}

// parseAmount parses an amount either as a decimal number or, if the global
// units flag is set, as a raw 18-decimal integer.
func parseAmount(ctx *cli.Context, name string) (decimal.Decimal, error) {
	value := strings.TrimSpace(ctx.String(name))
	if !ctx.Bool(unitsFlag.Name) {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s: %w", name, err)
		}
		return amount, nil
	}

	units, err := uint256.FromDecimal(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", name, err)
	}
	return mathutil.FromUnits(units), nil
}

// formatAmount formats the amount according to the global units flag.
func formatAmount(ctx *cli.Context, amount decimal.Decimal) (string, error) {
	if !ctx.Bool(unitsFlag.Name) {
		return amount.String(), nil
	}
	units, err := mathutil.ToUnits(amount)
	if err != nil {
		return "", err
	}
	return units.Dec(), nil
}

func getParams(ctx *cli.Context) (formula.Params, error) {
	params := config.GetParams()

	for _, p := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{feeFlag.Name, &params.Fee},
		{rateFlag.Name, &params.Rate},
		{lowerTargetFlag.Name, &params.LowerTarget},
		{upperTargetFlag.Name, &params.UpperTarget},
	} {
		if !ctx.IsSet(p.name) {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(ctx.String(p.name)))
		if err != nil {
			return formula.Params{}, fmt.Errorf("invalid %s: %w", p.name, err)
		}
		*p.value = v
	}

	return params, nil
}

func getBalances(ctx *cli.Context) (marketmaking.PoolBalances, error) {
	mainBalance, err := parseAmount(ctx, mainFlag.Name)
	if err != nil {
		return marketmaking.PoolBalances{}, err
	}
	wrapped, err := parseAmount(ctx, wrappedFlag.Name)
	if err != nil {
		return marketmaking.PoolBalances{}, err
	}
	supply, err := parseAmount(ctx, supplyFlag.Name)
	if err != nil {
		return marketmaking.PoolBalances{}, err
	}

	return marketmaking.PoolBalances{
		Main:      mainBalance,
		Wrapped:   wrapped,
		BptSupply: supply,
	}, nil
}
