package marketmaking

import "github.com/shopspring/decimal"

// MakingStrategy defines the automated market making strategy, using a formula to be applied to calculate the amounts of next trade.
type MakingStrategy struct {
	name        string
	description string
	formula     MakingFormula
}

// MakingFormula defines the interface for implementing the formula to derive
// the amounts of a swap given either side of it.
type MakingFormula interface {
	OutGivenIn(opts interface{}, amountIn decimal.Decimal) (amountOut decimal.Decimal, err error)
	InGivenOut(opts interface{}, amountOut decimal.Decimal) (amountIn decimal.Decimal, err error)
	FormulaType() int
}

// NewStrategyFromFormula returns the startegy struct with the name
func NewStrategyFromFormula(name, description string, formula MakingFormula) *MakingStrategy {
	strategy := &MakingStrategy{
		name:        name,
		description: description,
		formula:     formula,
	}

	return strategy
}

// NewLinearStrategy returns the strategy of a pool made of a main asset and
// its wrapped counterpart.
func NewLinearStrategy() *MakingStrategy {
	return NewStrategyFromFormula(
		"linear",
		"linear bonding curve between a main asset, its wrapped counterpart "+
			"and the pool share token",
		LinearFormula{},
	)
}

// IsZero checks if the given startegy is the zero value
func (ms MakingStrategy) IsZero() bool {
	return ms == MakingStrategy{}
}

// Name returns the short name of the MM strategy
func (ms *MakingStrategy) Name() string {
	return ms.name
}

// Description returns the long description of the MM strategy
func (ms *MakingStrategy) Description() string {
	return ms.description
}

// Formula returns the mathematical formula of the MM strategy
func (ms *MakingStrategy) Formula() MakingFormula {
	return ms.formula
}
