package mathutil

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned when converting a negative amount to units.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooPrecise is returned when an amount has more fractional
	// digits than Precision.
	ErrAmountTooPrecise = errors.New("amount exceeds fixed-point precision")
	// ErrUnitsOverflow is returned when an amount doesn't fit 256 bits once
	// scaled to units.
	ErrUnitsOverflow = errors.New("amount overflows 256 bits")
)

// FromUnits converts a raw amount, expressed in the smallest unit (ie.
// 1e-18), into its fixed-point decimal representation.
func FromUnits(units *uint256.Int) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units.ToBig(), -Precision)
}

// ToUnits converts a fixed-point decimal amount into the raw amount
// expressed in the smallest unit.
func ToUnits(amount decimal.Decimal) (*uint256.Int, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !IsFixedPoint(amount) {
		return nil, ErrAmountTooPrecise
	}

	scaled := amount.Shift(Precision).BigInt()
	units, overflow := uint256.FromBig(scaled)
	if overflow {
		return nil, ErrUnitsOverflow
	}
	return units, nil
}
