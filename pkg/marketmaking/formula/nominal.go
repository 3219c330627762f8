package formula

import (
	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
)

// ToNominal maps a real main balance into nominal main space.
// The result is rounded down to 18 fractional digits.
func ToNominal(amount decimal.Decimal, params Params) (decimal.Decimal, error) {
	if err := validate(params, amount); err != nil {
		return decimal.Zero, err
	}
	return mathutil.RoundDown(toNominal(amount, params)), nil
}

// FromNominal maps a nominal main balance back to a real one.
// The result is rounded up to 18 fractional digits.
func FromNominal(nominal decimal.Decimal, params Params) (decimal.Decimal, error) {
	if err := validate(params, nominal); err != nil {
		return decimal.Zero, err
	}
	return mathutil.RoundUp(fromNominal(nominal, params)), nil
}

// toNominal is the piecewise-linear transform:
//
//	amount < t1(1-f)           ->  amount / (1-f)
//	amount < t2 - f*t1         ->  amount + f*t1
//	otherwise                  ->  (amount + (t1+t2)f) / (1+f)
func toNominal(amount decimal.Decimal, p Params) decimal.Decimal {
	feeComplement := mathutil.One.Sub(p.Fee)
	lowerFee := p.Fee.Mul(p.LowerTarget)

	switch {
	case amount.LessThan(p.LowerTarget.Mul(feeComplement)):
		return mathutil.DivDecimal(amount, feeComplement)
	case amount.LessThan(p.UpperTarget.Sub(lowerFee)):
		return amount.Add(lowerFee)
	default:
		targetsFee := p.LowerTarget.Add(p.UpperTarget).Mul(p.Fee)
		return mathutil.DivDecimal(amount.Add(targetsFee), mathutil.One.Add(p.Fee))
	}
}

// fromNominal is the inverse of toNominal. Breakpoints are the targets
// themselves since they are already expressed in nominal space.
func fromNominal(nominal decimal.Decimal, p Params) decimal.Decimal {
	switch {
	case nominal.LessThan(p.LowerTarget):
		return nominal.Mul(mathutil.One.Sub(p.Fee))
	case nominal.LessThan(p.UpperTarget):
		return nominal.Sub(p.Fee.Mul(p.LowerTarget))
	default:
		targetsFee := p.LowerTarget.Add(p.UpperTarget).Mul(p.Fee)
		return nominal.Mul(mathutil.One.Add(p.Fee)).Sub(targetsFee)
	}
}
