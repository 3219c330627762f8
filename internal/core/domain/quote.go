package domain

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/marketmaking"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
)

const (
	OutcomeOK              = "ok"
	OutcomeDomainError     = "domain_error"
	OutcomeDegenerateState = "degenerate_state"
	OutcomeCanceled        = "canceled"
)

// QuoteRequest is a request for a single quote against a snapshot of pool
// balances. Either Kind is set, or the quote is routed from SwapKind,
// TokenIn and TokenOut.
type QuoteRequest struct {
	ID       string                    `json:"id,omitempty"`
	Kind     marketmaking.QuoteKind    `json:"kind,omitempty"`
	SwapKind marketmaking.SwapKind     `json:"given,omitempty"`
	TokenIn  marketmaking.Token        `json:"token_in,omitempty"`
	TokenOut marketmaking.Token        `json:"token_out,omitempty"`
	Amount   decimal.Decimal           `json:"amount"`
	Balances marketmaking.PoolBalances `json:"balances"`
	Params   formula.Params            `json:"params"`
}

// IsSwap returns true if the quote kind must be derived from the swap
// tokens.
func (r QuoteRequest) IsSwap() bool {
	return !r.Kind.IsValid()
}

// QuoteResult is the outcome of a QuoteRequest.
type QuoteResult struct {
	ID     string
	Kind   marketmaking.QuoteKind
	Amount decimal.Decimal
	Err    error
}

// Outcome classifies the result for reporting.
func (r QuoteResult) Outcome() string {
	switch {
	case r.Err == nil:
		return OutcomeOK
	case errors.Is(r.Err, formula.ErrDegenerateState):
		return OutcomeDegenerateState
	case errors.Is(r.Err, formula.ErrDomain):
		return OutcomeDomainError
	default:
		return OutcomeCanceled
	}
}
