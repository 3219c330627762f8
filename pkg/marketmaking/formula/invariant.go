package formula

import (
	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
)

// CalcInvariant returns the invariant of the pool given its nominal main
// balance and its wrapped balance, rounded down.
func CalcInvariant(
	nominalMain, wrappedBalance decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := params.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := validateBalances(nominalMain, wrappedBalance); err != nil {
		return decimal.Zero, err
	}
	return mathutil.RoundDown(calcInvariant(nominalMain, wrappedBalance, params)), nil
}

// CalcPoolRate returns the value of one pool share expressed in nominal
// main units, rounded down. Before the first join the rate is 1.
func CalcPoolRate(
	mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := params.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := validateBalances(mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	if bptSupply.IsZero() {
		return mathutil.One, nil
	}

	invariant := calcInvariant(toNominal(mainBalance, params), wrappedBalance, params)
	return mathutil.RoundDown(mathutil.DivDecimal(invariant, bptSupply)), nil
}

func calcInvariant(nominalMain, wrappedBalance decimal.Decimal, p Params) decimal.Decimal {
	return nominalMain.Add(wrappedBalance.Mul(p.Rate))
}
