package formula

import (
	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
)

// Params defines the parameters of the linear bonding curve.
type Params struct {
	// Fee is the fraction charged on main balances outside the targets range.
	Fee decimal.Decimal `json:"fee"`
	// Rate is the exchange rate from wrapped to main asset.
	Rate decimal.Decimal `json:"rate"`
	// LowerTarget and UpperTarget delimit the range of main balance where no
	// fee is charged.
	LowerTarget decimal.Decimal `json:"lower_target"`
	UpperTarget decimal.Decimal `json:"upper_target"`
}

// Validate returns an error if any of the params is out of range.
func (p Params) Validate() error {
	for _, v := range []decimal.Decimal{
		p.Fee, p.Rate, p.LowerTarget, p.UpperTarget,
	} {
		if !mathutil.IsFixedPoint(v) {
			return ErrAmountTooPrecise
		}
	}
	if p.Fee.IsNegative() || p.Fee.GreaterThanOrEqual(mathutil.One) {
		return ErrInvalidFee
	}
	if !p.Rate.IsPositive() {
		return ErrInvalidRate
	}
	if p.LowerTarget.IsNegative() || p.UpperTarget.IsNegative() {
		return ErrNegativeTarget
	}
	if p.LowerTarget.GreaterThan(p.UpperTarget) {
		return ErrInvalidTargets
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !mathutil.IsFixedPoint(amount) {
		return ErrAmountTooPrecise
	}
	return nil
}

func validateBalances(balances ...decimal.Decimal) error {
	for _, b := range balances {
		if b.IsNegative() {
			return ErrNegativeBalance
		}
		if !mathutil.IsFixedPoint(b) {
			return ErrAmountTooPrecise
		}
	}
	return nil
}

// validate checks params first, then the amount, then the balances, so
// that no computation starts with bad input.
func validate(
	params Params, amount decimal.Decimal, balances ...decimal.Decimal,
) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	return validateBalances(balances...)
}
