package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is wrapped by every error caused by invalid caller input.
	ErrDomain = errors.New("domain error")
	// ErrDegenerateState is wrapped by every error caused by a pool state
	// that can't be the result of well-formed operations.
	ErrDegenerateState = errors.New("degenerate pool state")
)

var (
	// ErrInvalidFee ...
	ErrInvalidFee = fmt.Errorf("%w: fee must be in range [0, 1)", ErrDomain)
	// ErrInvalidRate ...
	ErrInvalidRate = fmt.Errorf("%w: rate must be greater than zero", ErrDomain)
	// ErrNegativeTarget ...
	ErrNegativeTarget = fmt.Errorf("%w: targets must not be negative", ErrDomain)
	// ErrInvalidTargets ...
	ErrInvalidTargets = fmt.Errorf(
		"%w: lower target must not be greater than upper target", ErrDomain,
	)
	// ErrNegativeAmount ...
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", ErrDomain)
	// ErrNegativeBalance ...
	ErrNegativeBalance = fmt.Errorf("%w: balance must not be negative", ErrDomain)
	// ErrAmountTooPrecise is returned for any amount, balance or parameter
	// with more than 18 fractional digits.
	ErrAmountTooPrecise = fmt.Errorf(
		"%w: value exceeds fixed-point precision", ErrDomain,
	)
	// ErrAmountTooBig is returned when the amount to take out of the pool
	// exceeds the related balance or supply.
	ErrAmountTooBig = fmt.Errorf("%w: provided amount is too big", ErrDomain)
	// ErrInsufficientBalance is returned when the pool can't pay the amount
	// resulting from the quote.
	ErrInsufficientBalance = fmt.Errorf(
		"%w: pool balance is too low for the provided amount", ErrDomain,
	)

	// ErrZeroSupply ...
	ErrZeroSupply = fmt.Errorf(
		"%w: cannot burn pool shares with zero supply", ErrDegenerateState,
	)
	// ErrZeroInvariant ...
	ErrZeroInvariant = fmt.Errorf(
		"%w: invariant is zero with non-zero supply", ErrDegenerateState,
	)
)
