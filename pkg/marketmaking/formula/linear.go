// Package formula defines the linear bonding curve used to quote swaps,
// joins and exits of a pool made of a main asset, its wrapped counterpart
// and the pool share token (BPT).
package formula

import (
	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
)

// CalcBptOutPerMainIn returns the pool shares minted for depositing mainIn.
func CalcBptOutPerMainIn(
	mainIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, mainIn, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundDown(bptOutPerMainIn(mainIn, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcBptInPerMainOut returns the pool shares to burn for withdrawing mainOut.
func CalcBptInPerMainOut(
	mainOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, mainOut, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundUp(bptInPerMainOut(mainOut, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcMainInPerBptOut returns the main amount to deposit for minting bptOut.
func CalcMainInPerBptOut(
	bptOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, bptOut, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundUp(mainInPerBptOut(bptOut, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcMainOutPerBptIn returns the main amount withdrawn for burning bptIn.
func CalcMainOutPerBptIn(
	bptIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, bptIn, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundDown(mainOutPerBptIn(bptIn, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcWrappedOutPerMainIn returns the wrapped amount received for mainIn.
func CalcWrappedOutPerMainIn(
	mainIn, mainBalance decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, mainIn, mainBalance); err != nil {
		return decimal.Zero, err
	}
	return roundDown(wrappedOutPerMainIn(mainIn, mainBalance, params))
}

// CalcWrappedInPerMainOut returns the wrapped amount to pay for mainOut.
func CalcWrappedInPerMainOut(
	mainOut, mainBalance decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, mainOut, mainBalance); err != nil {
		return decimal.Zero, err
	}
	return roundUp(wrappedInPerMainOut(mainOut, mainBalance, params))
}

// CalcMainInPerWrappedOut returns the main amount to pay for wrappedOut.
func CalcMainInPerWrappedOut(
	wrappedOut, mainBalance decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, wrappedOut, mainBalance); err != nil {
		return decimal.Zero, err
	}
	return roundUp(mainInPerWrappedOut(wrappedOut, mainBalance, params))
}

// CalcMainOutPerWrappedIn returns the main amount received for wrappedIn.
func CalcMainOutPerWrappedIn(
	wrappedIn, mainBalance decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, wrappedIn, mainBalance); err != nil {
		return decimal.Zero, err
	}
	return roundDown(mainOutPerWrappedIn(wrappedIn, mainBalance, params))
}

// CalcBptOutPerWrappedIn returns the pool shares minted for depositing
// wrappedIn.
func CalcBptOutPerWrappedIn(
	wrappedIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, wrappedIn, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundDown(bptOutPerWrappedIn(wrappedIn, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcBptInPerWrappedOut returns the pool shares to burn for withdrawing
// wrappedOut.
func CalcBptInPerWrappedOut(
	wrappedOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, wrappedOut, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundUp(bptInPerWrappedOut(wrappedOut, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcWrappedInPerBptOut returns the wrapped amount to deposit for minting
// bptOut.
func CalcWrappedInPerBptOut(
	bptOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, bptOut, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundUp(wrappedInPerBptOut(bptOut, mainBalance, wrappedBalance, bptSupply, params))
}

// CalcWrappedOutPerBptIn returns the wrapped amount withdrawn for burning
// bptIn.
func CalcWrappedOutPerBptIn(
	bptIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params,
) (decimal.Decimal, error) {
	if err := validate(params, bptIn, mainBalance, wrappedBalance, bptSupply); err != nil {
		return decimal.Zero, err
	}
	return roundDown(wrappedOutPerBptIn(bptIn, mainBalance, wrappedBalance, bptSupply, params))
}

func roundDown(amount decimal.Decimal, err error) (decimal.Decimal, error) {
	if err != nil {
		return decimal.Zero, err
	}
	return mathutil.RoundDown(amount), nil
}

func roundUp(amount decimal.Decimal, err error) (decimal.Decimal, error) {
	if err != nil {
		return decimal.Zero, err
	}
	return mathutil.RoundUp(amount), nil
}

// nonNegative clamps at zero an amount paid by the pool. Going back and
// forth nominal space can leave a negative residual below 1e-18 when the
// quoted amount is close to zero.
func nonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Below are the unrounded quotes. Inputs are expected to be validated.

func bptOutPerMainIn(
	mainIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return toNominal(mainIn, p), nil
	}

	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := toNominal(mainBalance.Add(mainIn), p)
	deltaNominalMain := afterNominalMain.Sub(previousNominalMain)
	invariant := calcInvariant(previousNominalMain, wrappedBalance, p)
	if invariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	return mathutil.MulDiv(bptSupply, deltaNominalMain, invariant), nil
}

func bptInPerMainOut(
	mainOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return decimal.Zero, ErrZeroSupply
	}
	if mainOut.GreaterThan(mainBalance) {
		return decimal.Zero, ErrAmountTooBig
	}

	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := toNominal(mainBalance.Sub(mainOut), p)
	deltaNominalMain := previousNominalMain.Sub(afterNominalMain)
	invariant := calcInvariant(previousNominalMain, wrappedBalance, p)
	if invariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	return mathutil.MulDiv(bptSupply, deltaNominalMain, invariant), nil
}

func mainInPerBptOut(
	bptOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return fromNominal(bptOut, p), nil
	}

	previousNominalMain := toNominal(mainBalance, p)
	invariant := calcInvariant(previousNominalMain, wrappedBalance, p)
	if invariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	if bptOut.IsZero() {
		return decimal.Zero, nil
	}
	deltaNominalMain := mathutil.MulDiv(invariant, bptOut, bptSupply)
	afterNominalMain := previousNominalMain.Add(deltaNominalMain)
	newMainBalance := fromNominal(afterNominalMain, p)
	return newMainBalance.Sub(mainBalance), nil
}

func mainOutPerBptIn(
	bptIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return decimal.Zero, ErrZeroSupply
	}
	if bptIn.GreaterThan(bptSupply) {
		return decimal.Zero, ErrAmountTooBig
	}

	previousNominalMain := toNominal(mainBalance, p)
	invariant := calcInvariant(previousNominalMain, wrappedBalance, p)
	if invariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	if bptIn.IsZero() {
		return decimal.Zero, nil
	}
	deltaNominalMain := mathutil.MulDiv(invariant, bptIn, bptSupply)
	afterNominalMain := previousNominalMain.Sub(deltaNominalMain)
	newMainBalance := fromNominal(afterNominalMain, p)
	if newMainBalance.IsNegative() {
		return decimal.Zero, ErrInsufficientBalance
	}
	return nonNegative(mainBalance.Sub(newMainBalance)), nil
}

func wrappedOutPerMainIn(
	mainIn, mainBalance decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := toNominal(mainBalance.Add(mainIn), p)
	deltaNominalMain := afterNominalMain.Sub(previousNominalMain)
	return mathutil.DivDecimal(deltaNominalMain, p.Rate), nil
}

func wrappedInPerMainOut(
	mainOut, mainBalance decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if mainOut.GreaterThan(mainBalance) {
		return decimal.Zero, ErrAmountTooBig
	}

	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := toNominal(mainBalance.Sub(mainOut), p)
	deltaNominalMain := previousNominalMain.Sub(afterNominalMain)
	return mathutil.DivDecimal(deltaNominalMain, p.Rate), nil
}

func mainInPerWrappedOut(
	wrappedOut, mainBalance decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if wrappedOut.IsZero() {
		return decimal.Zero, nil
	}

	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := previousNominalMain.Add(wrappedOut.Mul(p.Rate))
	newMainBalance := fromNominal(afterNominalMain, p)
	return newMainBalance.Sub(mainBalance), nil
}

func mainOutPerWrappedIn(
	wrappedIn, mainBalance decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if wrappedIn.IsZero() {
		return decimal.Zero, nil
	}

	previousNominalMain := toNominal(mainBalance, p)
	afterNominalMain := previousNominalMain.Sub(wrappedIn.Mul(p.Rate))
	newMainBalance := fromNominal(afterNominalMain, p)
	if newMainBalance.IsNegative() {
		return decimal.Zero, ErrInsufficientBalance
	}
	return nonNegative(mainBalance.Sub(newMainBalance)), nil
}

func bptOutPerWrappedIn(
	wrappedIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return wrappedIn.Mul(p.Rate), nil
	}

	nominalMain := toNominal(mainBalance, p)
	previousInvariant := calcInvariant(nominalMain, wrappedBalance, p)
	if previousInvariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	newWrappedBalance := wrappedBalance.Add(wrappedIn)
	newInvariant := calcInvariant(nominalMain, newWrappedBalance, p)
	newBptBalance := mathutil.MulDiv(bptSupply, newInvariant, previousInvariant)
	return newBptBalance.Sub(bptSupply), nil
}

func bptInPerWrappedOut(
	wrappedOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return decimal.Zero, ErrZeroSupply
	}
	if wrappedOut.GreaterThan(wrappedBalance) {
		return decimal.Zero, ErrAmountTooBig
	}

	nominalMain := toNominal(mainBalance, p)
	previousInvariant := calcInvariant(nominalMain, wrappedBalance, p)
	if previousInvariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	newWrappedBalance := wrappedBalance.Sub(wrappedOut)
	newInvariant := calcInvariant(nominalMain, newWrappedBalance, p)
	newBptBalance := mathutil.MulDiv(bptSupply, newInvariant, previousInvariant)
	return bptSupply.Sub(newBptBalance), nil
}

func wrappedInPerBptOut(
	bptOut, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return mathutil.DivDecimal(bptOut, p.Rate), nil
	}

	nominalMain := toNominal(mainBalance, p)
	previousInvariant := calcInvariant(nominalMain, wrappedBalance, p)
	if previousInvariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	newBptBalance := bptSupply.Add(bptOut)
	newInvariant := mathutil.MulDiv(newBptBalance, previousInvariant, bptSupply)
	newWrappedBalance := mathutil.DivDecimal(newInvariant.Sub(nominalMain), p.Rate)
	return newWrappedBalance.Sub(wrappedBalance), nil
}

func wrappedOutPerBptIn(
	bptIn, mainBalance, wrappedBalance, bptSupply decimal.Decimal, p Params,
) (decimal.Decimal, error) {
	if bptSupply.IsZero() {
		return decimal.Zero, ErrZeroSupply
	}
	if bptIn.GreaterThan(bptSupply) {
		return decimal.Zero, ErrAmountTooBig
	}

	nominalMain := toNominal(mainBalance, p)
	previousInvariant := calcInvariant(nominalMain, wrappedBalance, p)
	if previousInvariant.IsZero() {
		return decimal.Zero, ErrZeroInvariant
	}
	newBptBalance := bptSupply.Sub(bptIn)
	newInvariant := mathutil.MulDiv(newBptBalance, previousInvariant, bptSupply)
	newWrappedBalance := mathutil.DivDecimal(newInvariant.Sub(nominalMain), p.Rate)
	if newWrappedBalance.IsNegative() {
		return decimal.Zero, ErrInsufficientBalance
	}
	return nonNegative(wrappedBalance.Sub(newWrappedBalance)), nil
}
