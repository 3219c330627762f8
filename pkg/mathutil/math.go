package mathutil

import "github.com/shopspring/decimal"

const (
	// Precision is the number of fractional digits of a fixed-point amount.
	Precision = int32(18)
	// InternalPrecision is the number of fractional digits kept by every
	// intermediate division before the final rounding to Precision.
	InternalPrecision = int32(36)
)

var (
	// One represents a single unit of an amount as decimal.Decimal
	One = decimal.NewFromInt(1)
	// Epsilon is the smallest representable fixed-point amount, 1e-18
	Epsilon = decimal.New(1, -Precision)
)

// MulDecimal takes two decimal.Decimal numbers and multiply them x * y and returns the result as decimal.Decimal
func MulDecimal(X, Y decimal.Decimal) (z decimal.Decimal) {
	z = X.Mul(Y)
	return
}

// DivDecimal takes two decimal.Decimal numbers and divides them x / y,
// keeping InternalPrecision fractional digits. The caller must ensure y is
// not zero.
//
// The quotient is rounded half up, so it may be off by 5e-37 in either
// direction. Callers round to Precision afterwards, in the direction that
// favours the pool, and must clamp amounts that can't be negative.
func DivDecimal(X, Y decimal.Decimal) (z decimal.Decimal) {
	z = X.DivRound(Y, InternalPrecision)
	return
}

// MulDiv returns x * y / d computed with a single division, so that the
// product never loses precision before being divided.
func MulDiv(x, y, d decimal.Decimal) decimal.Decimal {
	return DivDecimal(MulDecimal(x, y), d)
}

// RoundDown truncates the given amount to Precision fractional digits,
// towards negative infinity.
func RoundDown(x decimal.Decimal) decimal.Decimal {
	return x.RoundFloor(Precision)
}

// RoundUp rounds the given amount to Precision fractional digits, towards
// positive infinity.
func RoundUp(x decimal.Decimal) decimal.Decimal {
	return x.RoundCeil(Precision)
}

// IsFixedPoint returns whether the given amount is representable with
// Precision fractional digits without loss.
func IsFixedPoint(x decimal.Decimal) bool {
	return x.Equal(x.Truncate(Precision))
}
