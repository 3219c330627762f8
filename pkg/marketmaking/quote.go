package marketmaking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
)

var (
	// ErrInvalidSwap is returned when a swap can't be routed to any quote.
	ErrInvalidSwap = fmt.Errorf("%w: swap tokens are not valid", formula.ErrDomain)
	// ErrUnknownQuoteKind ...
	ErrUnknownQuoteKind = fmt.Errorf("%w: unknown quote kind", formula.ErrDomain)
	// ErrUnknownSwapKind ...
	ErrUnknownSwapKind = fmt.Errorf("%w: unknown swap kind", formula.ErrDomain)
	// ErrInvalidOptsType ...
	ErrInvalidOptsType = errors.New("opts must be of type LinearOpts")
)

// Token identifies one of the three tokens of a linear pool.
type Token string

const (
	TokenMain    Token = "main"
	TokenWrapped Token = "wrapped"
	TokenBpt     Token = "bpt"
)

func (t Token) isValid() bool {
	return t == TokenMain || t == TokenWrapped || t == TokenBpt
}

// SwapKind tells which side of a swap is known.
type SwapKind int

const (
	GivenIn SwapKind = iota
	GivenOut
)

func (k SwapKind) String() string {
	if k == GivenOut {
		return "out"
	}
	return "in"
}

// ParseSwapKind parses either "in" or "out".
func ParseSwapKind(s string) (SwapKind, error) {
	switch strings.ToLower(s) {
	case "in":
		return GivenIn, nil
	case "out":
		return GivenOut, nil
	default:
		return 0, ErrUnknownSwapKind
	}
}

func (k SwapKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SwapKind) UnmarshalText(text []byte) error {
	kind, err := ParseSwapKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// QuoteKind identifies one of the quote functions of the linear formula.
type QuoteKind int

const (
	QuoteKindUnspecified QuoteKind = iota
	BptOutPerMainIn
	BptInPerMainOut
	MainInPerBptOut
	MainOutPerBptIn
	WrappedOutPerMainIn
	WrappedInPerMainOut
	MainInPerWrappedOut
	MainOutPerWrappedIn
	BptOutPerWrappedIn
	BptInPerWrappedOut
	WrappedInPerBptOut
	WrappedOutPerBptIn
)

var quoteKindNames = map[QuoteKind]string{
	BptOutPerMainIn:     "BptOutPerMainIn",
	BptInPerMainOut:     "BptInPerMainOut",
	MainInPerBptOut:     "MainInPerBptOut",
	MainOutPerBptIn:     "MainOutPerBptIn",
	WrappedOutPerMainIn: "WrappedOutPerMainIn",
	WrappedInPerMainOut: "WrappedInPerMainOut",
	MainInPerWrappedOut: "MainInPerWrappedOut",
	MainOutPerWrappedIn: "MainOutPerWrappedIn",
	BptOutPerWrappedIn:  "BptOutPerWrappedIn",
	BptInPerWrappedOut:  "BptInPerWrappedOut",
	WrappedInPerBptOut:  "WrappedInPerBptOut",
	WrappedOutPerBptIn:  "WrappedOutPerBptIn",
}

// QuoteKinds returns all the valid quote kinds.
func QuoteKinds() []QuoteKind {
	kinds := make([]QuoteKind, 0, len(quoteKindNames))
	for k := BptOutPerMainIn; k <= WrappedOutPerBptIn; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k QuoteKind) String() string {
	if name, ok := quoteKindNames[k]; ok {
		return name
	}
	return "Unspecified"
}

// ParseQuoteKind parses the name of a quote kind, case insensitive.
func ParseQuoteKind(s string) (QuoteKind, error) {
	for k, name := range quoteKindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return QuoteKindUnspecified, ErrUnknownQuoteKind
}

func (k QuoteKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *QuoteKind) UnmarshalText(text []byte) error {
	kind, err := ParseQuoteKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// IsValid returns whether the kind refers to an actual quote function.
func (k QuoteKind) IsValid() bool {
	_, ok := quoteKindNames[k]
	return ok
}

type swapRoute struct {
	kind     SwapKind
	tokenIn  Token
	tokenOut Token
}

var routes = map[swapRoute]QuoteKind{
	{GivenIn, TokenMain, TokenBpt}:     BptOutPerMainIn,
	{GivenIn, TokenMain, TokenWrapped}: WrappedOutPerMainIn,
	{GivenIn, TokenWrapped, TokenMain}: MainOutPerWrappedIn,
	{GivenIn, TokenWrapped, TokenBpt}:  BptOutPerWrappedIn,
	{GivenIn, TokenBpt, TokenMain}:     MainOutPerBptIn,
	{GivenIn, TokenBpt, TokenWrapped}:  WrappedOutPerBptIn,

	{GivenOut, TokenMain, TokenBpt}:     MainInPerBptOut,
	{GivenOut, TokenMain, TokenWrapped}: MainInPerWrappedOut,
	{GivenOut, TokenWrapped, TokenMain}: WrappedInPerMainOut,
	{GivenOut, TokenWrapped, TokenBpt}:  WrappedInPerBptOut,
	{GivenOut, TokenBpt, TokenMain}:     BptInPerMainOut,
	{GivenOut, TokenBpt, TokenWrapped}:  BptInPerWrappedOut,
}

// QuoteKindFor returns the quote to use for swapping tokenIn for tokenOut.
// With GivenIn the known amount is that of tokenIn and the quote returns the
// amount of tokenOut, the opposite with GivenOut.
func QuoteKindFor(kind SwapKind, tokenIn, tokenOut Token) (QuoteKind, error) {
	if !tokenIn.isValid() || !tokenOut.isValid() {
		return QuoteKindUnspecified, ErrInvalidSwap
	}
	quoteKind, ok := routes[swapRoute{kind, tokenIn, tokenOut}]
	if !ok {
		return QuoteKindUnspecified, ErrInvalidSwap
	}
	return quoteKind, nil
}

// PoolBalances groups the balances of a linear pool.
type PoolBalances struct {
	Main      decimal.Decimal `json:"main"`
	Wrapped   decimal.Decimal `json:"wrapped"`
	BptSupply decimal.Decimal `json:"bpt_supply"`
}

// Quote runs the quote function identified by kind.
func Quote(
	kind QuoteKind, amount decimal.Decimal, b PoolBalances, params formula.Params,
) (decimal.Decimal, error) {
	switch kind {
	case BptOutPerMainIn:
		return formula.CalcBptOutPerMainIn(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case BptInPerMainOut:
		return formula.CalcBptInPerMainOut(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case MainInPerBptOut:
		return formula.CalcMainInPerBptOut(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case MainOutPerBptIn:
		return formula.CalcMainOutPerBptIn(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case WrappedOutPerMainIn:
		return formula.CalcWrappedOutPerMainIn(amount, b.Main, params)
	case WrappedInPerMainOut:
		return formula.CalcWrappedInPerMainOut(amount, b.Main, params)
	case MainInPerWrappedOut:
		return formula.CalcMainInPerWrappedOut(amount, b.Main, params)
	case MainOutPerWrappedIn:
		return formula.CalcMainOutPerWrappedIn(amount, b.Main, params)
	case BptOutPerWrappedIn:
		return formula.CalcBptOutPerWrappedIn(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case BptInPerWrappedOut:
		return formula.CalcBptInPerWrappedOut(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case WrappedInPerBptOut:
		return formula.CalcWrappedInPerBptOut(amount, b.Main, b.Wrapped, b.BptSupply, params)
	case WrappedOutPerBptIn:
		return formula.CalcWrappedOutPerBptIn(amount, b.Main, b.Wrapped, b.BptSupply, params)
	default:
		return decimal.Zero, ErrUnknownQuoteKind
	}
}

// LinearOpts defines the parameters needed by LinearFormula.
type LinearOpts struct {
	TokenIn  Token
	TokenOut Token
	Balances PoolBalances
	Params   formula.Params
}

// LinearType identifies the linear formula.
const LinearType = 2

// LinearFormula implements MakingFormula on top of the linear bonding curve.
type LinearFormula struct{}

// OutGivenIn returns the amount of TokenOut received for amountIn of TokenIn.
func (LinearFormula) OutGivenIn(
	_opts interface{}, amountIn decimal.Decimal,
) (amountOut decimal.Decimal, err error) {
	opts, ok := _opts.(LinearOpts)
	if !ok {
		err = ErrInvalidOptsType
		return
	}

	kind, err := QuoteKindFor(GivenIn, opts.TokenIn, opts.TokenOut)
	if err != nil {
		return
	}
	return Quote(kind, amountIn, opts.Balances, opts.Params)
}

// InGivenOut returns the amount of TokenIn needed for amountOut of TokenOut.
func (LinearFormula) InGivenOut(
	_opts interface{}, amountOut decimal.Decimal,
) (amountIn decimal.Decimal, err error) {
	opts, ok := _opts.(LinearOpts)
	if !ok {
		err = ErrInvalidOptsType
		return
	}

	kind, err := QuoteKindFor(GivenOut, opts.TokenIn, opts.TokenOut)
	if err != nil {
		return
	}
	return Quote(kind, amountOut, opts.Balances, opts.Params)
}

func (LinearFormula) FormulaType() int {
	return LinearType
}
