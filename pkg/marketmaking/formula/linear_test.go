package formula

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/linear-pool/pkg/mathutil"
)

type poolQuote func(amount, mainBalance, wrappedBalance, bptSupply decimal.Decimal, params Params) (decimal.Decimal, error)

type mainQuote func(amount, mainBalance decimal.Decimal, params Params) (decimal.Decimal, error)

// asPoolQuote adapts main<->wrapped quotes, which only depend on the main
// balance, to the signature of the others.
func asPoolQuote(f mainQuote) poolQuote {
	return func(amount, mainBalance, _, _ decimal.Decimal, params Params) (decimal.Decimal, error) {
		return f(amount, mainBalance, params)
	}
}

type quoteFunc struct {
	name      string
	exported  poolQuote
	exact     poolQuote
	roundsUp  bool
	amount    string
	wantQuote string
}

// Pool state: main 1500, wrapped 800, supply 2400 with fee 2% and rate 1.05.
var quoteFuncs = []quoteFunc{
	{"BptOutPerMainIn", CalcBptOutPerMainIn, bptOutPerMainIn, false, "600", "607.776669990029910269"},
	{"BptInPerMainOut", CalcBptInPerMainOut, bptInPerMainOut, true, "600", "611.829816672431684539"},
	{"MainInPerBptOut", CalcMainInPerBptOut, mainInPerBptOut, true, "250", "245.833333333333333334"},
	{"MainOutPerBptIn", CalcMainOutPerBptIn, mainOutPerBptIn, false, "250", "245.833333333333333333"},
	{"WrappedOutPerMainIn", asPoolQuote(CalcWrappedOutPerMainIn), asPoolQuote(wrappedOutPerMainIn), false, "600", "569.187675070028011204"},
	{"WrappedInPerMainOut", asPoolQuote(CalcWrappedInPerMainOut), asPoolQuote(wrappedInPerMainOut), true, "600", "572.98347910592808552"},
	{"MainInPerWrappedOut", asPoolQuote(CalcMainInPerWrappedOut), asPoolQuote(mainInPerWrappedOut), true, "333.333333333333333333", "350"},
	{"MainOutPerWrappedIn", asPoolQuote(CalcMainOutPerWrappedIn), asPoolQuote(mainOutPerWrappedIn), false, "333.333333333333333333", "349.999999999999999999"},
	{"BptOutPerWrappedIn", CalcBptOutPerWrappedIn, bptOutPerWrappedIn, false, "300", "320.338983050847457627"},
	{"BptInPerWrappedOut", CalcBptInPerWrappedOut, bptInPerWrappedOut, true, "300", "320.338983050847457628"},
	{"WrappedInPerBptOut", CalcWrappedInPerBptOut, wrappedInPerBptOut, true, "300", "280.952380952380952381"},
	{"WrappedOutPerBptIn", CalcWrappedOutPerBptIn, wrappedOutPerBptIn, false, "300", "280.95238095238095238"},
}

func TestQuotesRoundingDirection(t *testing.T) {
	params := testParams[1]
	mainBalance, wrappedBalance, bptSupply := d("1500"), d("800"), d("2400")

	for _, tt := range quoteFuncs {
		t.Run(tt.name, func(t *testing.T) {
			amount := d(tt.amount)

			got, err := tt.exported(amount, mainBalance, wrappedBalance, bptSupply, params)
			require.NoError(t, err)
			require.Equal(t, tt.wantQuote, got.String())

			exact, err := tt.exact(amount, mainBalance, wrappedBalance, bptSupply, params)
			require.NoError(t, err)
			require.False(t, mathutil.IsFixedPoint(exact))
			if tt.roundsUp {
				require.True(t, got.GreaterThan(exact))
			} else {
				require.True(t, got.LessThan(exact))
			}
			require.True(t, got.Sub(exact).Abs().LessThan(mathutil.Epsilon))
		})
	}
}

func TestQuotesZeroAmount(t *testing.T) {
	params := []Params{testParams[1], newParams("0.03", "1", "1000", "2000")}
	mainBalances := []string{"1", "3", "7", "11", "500", "1500", "2500", "5000"}

	for _, tt := range quoteFuncs {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range params {
				for _, mainBalance := range mainBalances {
					got, err := tt.exported(decimal.Zero, d(mainBalance), d("10"), d("100"), p)
					require.NoError(t, err)
					require.True(t, got.IsZero(), "main %s fee %s: got %s", mainBalance, p.Fee, got)
				}
			}
		})
	}
}

func TestQuotesNeverNegative(t *testing.T) {
	params := newParams("0.03", "1", "1000", "2000")
	amounts := []string{"0.000000000000000001", "0.000000000000000007", "0.001"}
	mainBalances := []string{"1", "7", "500", "1500", "2500", "5000"}

	for _, tt := range quoteFuncs {
		t.Run(tt.name, func(t *testing.T) {
			for _, mainBalance := range mainBalances {
				for _, amount := range amounts {
					got, err := tt.exported(d(amount), d(mainBalance), d("10"), d("100"), params)
					require.NoError(t, err)
					require.False(t, got.IsNegative(), "main %s amount %s: got %s", mainBalance, amount, got)
				}
			}
		})
	}
}

func TestBootstrap(t *testing.T) {
	params := testParams[0]

	t.Run("deposit of main defines the initial supply", func(t *testing.T) {
		bptOut, err := CalcBptOutPerMainIn(d("500"), decimal.Zero, decimal.Zero, decimal.Zero, params)
		require.NoError(t, err)
		require.Equal(t, "505.050505050505050505", bptOut.String())

		nominal, err := ToNominal(d("500"), params)
		require.NoError(t, err)
		require.True(t, bptOut.Equal(nominal))
	})

	t.Run("bootstrap ignores the wrapped balance", func(t *testing.T) {
		for _, mainIn := range []string{"1", "999", "1500", "1990", "2500"} {
			bptOut, err := CalcBptOutPerMainIn(d(mainIn), decimal.Zero, d("123.45"), decimal.Zero, params)
			require.NoError(t, err)
			nominal, err := ToNominal(d(mainIn), params)
			require.NoError(t, err)
			require.True(t, bptOut.Equal(nominal))
		}
	})

	t.Run("main in per bpt out", func(t *testing.T) {
		mainIn, err := CalcMainInPerBptOut(d("505.050505050505050505"), decimal.Zero, decimal.Zero, decimal.Zero, params)
		require.NoError(t, err)
		require.Equal(t, "500", mainIn.String())
	})

	t.Run("wrapped deposits are scaled by rate", func(t *testing.T) {
		p := testParams[1]
		bptOut, err := CalcBptOutPerWrappedIn(d("100"), decimal.Zero, decimal.Zero, decimal.Zero, p)
		require.NoError(t, err)
		require.Equal(t, "105", bptOut.String())

		wrappedIn, err := CalcWrappedInPerBptOut(d("105"), decimal.Zero, decimal.Zero, decimal.Zero, p)
		require.NoError(t, err)
		require.Equal(t, "100", wrappedIn.String())
	})
}

func TestFullExit(t *testing.T) {
	params := testParams[0]
	mainBalance := d("1500")

	invariant, err := CalcInvariant(toNominal(mainBalance, params), decimal.Zero, params)
	require.NoError(t, err)
	require.Equal(t, "1510", invariant.String())

	mainOut, err := CalcMainOutPerBptIn(invariant, mainBalance, decimal.Zero, invariant, params)
	require.NoError(t, err)
	require.True(t, mainOut.Equal(mainBalance))

	rate, err := CalcPoolRate(mainBalance, decimal.Zero, invariant, params)
	require.NoError(t, err)
	require.True(t, rate.Equal(mathutil.One))
}

func TestMainWrappedConservation(t *testing.T) {
	tolerance := decimal.New(1, -17)

	for _, p := range testParams[:4] {
		for _, mainBalance := range []string{"0", "400", "990", "1500", "1990", "3000"} {
			for _, mainIn := range []string{"0.5", "10", "600", "2500"} {
				wrappedOut, err := CalcWrappedOutPerMainIn(d(mainIn), d(mainBalance), p)
				require.NoError(t, err)

				mainBack, err := CalcMainInPerWrappedOut(wrappedOut, d(mainBalance), p)
				require.NoError(t, err)

				require.Truef(
					t, mainBack.Sub(d(mainIn)).Abs().LessThanOrEqual(tolerance),
					"main %s in %s: got back %s", mainBalance, mainIn, mainBack,
				)
			}
		}
	}
}

func TestOutIsInverseOfIn(t *testing.T) {
	params := testParams[1]
	mainBalance, wrappedBalance, bptSupply := d("1500"), d("800"), d("2400")
	tolerance := decimal.New(1, -16)

	t.Run("main and bpt", func(t *testing.T) {
		bptOut, err := CalcBptOutPerMainIn(d("600"), mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		mainIn, err := CalcMainInPerBptOut(bptOut, mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		require.True(t, mainIn.Sub(d("600")).Abs().LessThanOrEqual(tolerance))
		require.True(t, mainIn.LessThanOrEqual(d("600")))

		bptIn, err := CalcBptInPerMainOut(d("600"), mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		mainOut, err := CalcMainOutPerBptIn(bptIn, mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		require.True(t, mainOut.Sub(d("600")).Abs().LessThanOrEqual(tolerance))
	})

	t.Run("wrapped and bpt", func(t *testing.T) {
		bptOut, err := CalcBptOutPerWrappedIn(d("300"), mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		wrappedIn, err := CalcWrappedInPerBptOut(bptOut, mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		require.True(t, wrappedIn.Sub(d("300")).Abs().LessThanOrEqual(tolerance))

		bptIn, err := CalcBptInPerWrappedOut(d("300"), mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		wrappedOut, err := CalcWrappedOutPerBptIn(bptIn, mainBalance, wrappedBalance, bptSupply, params)
		require.NoError(t, err)
		require.True(t, wrappedOut.Sub(d("300")).Abs().LessThanOrEqual(tolerance))
	})

	t.Run("main and wrapped", func(t *testing.T) {
		mainOut, err := CalcMainOutPerWrappedIn(d("500"), mainBalance, params)
		require.NoError(t, err)
		wrappedIn, err := CalcWrappedInPerMainOut(mainOut, mainBalance, params)
		require.NoError(t, err)
		require.True(t, wrappedIn.Sub(d("500")).Abs().LessThanOrEqual(tolerance))
	})
}

func TestFeeMonotonicity(t *testing.T) {
	fees := []string{"0", "0.001", "0.01", "0.05", "0.1"}

	// Joins with main balance kept inside the no-fee band for every fee.
	t.Run("bpt out per main in", func(t *testing.T) {
		previous := decimal.Zero
		for i, fee := range fees {
			p := newParams(fee, "1.05", "1000", "2000")
			bptOut, err := CalcBptOutPerMainIn(d("300"), d("1200"), d("800"), d("2400"), p)
			require.NoError(t, err)
			if i > 0 {
				require.True(t, bptOut.LessThanOrEqual(previous))
			}
			previous = bptOut
		}
	})

	// Joins with main balance below the sum of the targets.
	t.Run("bpt out per wrapped in", func(t *testing.T) {
		for _, mainBalance := range []string{"0", "500", "1200", "1995", "2999"} {
			previous := decimal.Zero
			for i, fee := range fees {
				p := newParams(fee, "1.05", "1000", "2000")
				bptOut, err := CalcBptOutPerWrappedIn(d("300"), d(mainBalance), d("800"), d("2400"), p)
				require.NoError(t, err)
				if i > 0 {
					require.True(t, bptOut.LessThanOrEqual(previous))
				}
				previous = bptOut
			}
		}
	})
}

func TestQuotesFailing(t *testing.T) {
	valid := testParams[1]
	zero := decimal.Zero

	tests := []struct {
		name      string
		quote     poolQuote
		amount    decimal.Decimal
		main      decimal.Decimal
		wrapped   decimal.Decimal
		supply    decimal.Decimal
		params    Params
		wantError error
	}{
		{"invalid fee", CalcBptOutPerMainIn, d("1"), d("1500"), d("800"), d("2400"), newParams("1.5", "1", "1", "2"), ErrInvalidFee},
		{"invalid rate", CalcWrappedOutPerBptIn, d("1"), d("1500"), d("800"), d("2400"), newParams("0.01", "0", "1", "2"), ErrInvalidRate},
		{"misordered targets", asPoolQuote(CalcMainOutPerWrappedIn), d("1"), d("1500"), zero, zero, newParams("0.01", "1", "3", "2"), ErrInvalidTargets},
		{"negative amount", CalcBptInPerWrappedOut, d("-1"), d("1500"), d("800"), d("2400"), valid, ErrNegativeAmount},
		{"negative main balance", CalcMainInPerBptOut, d("1"), d("-1500"), d("800"), d("2400"), valid, ErrNegativeBalance},
		{"negative wrapped balance", CalcBptOutPerWrappedIn, d("1"), d("1500"), d("-800"), d("2400"), valid, ErrNegativeBalance},
		{"negative supply", CalcWrappedInPerBptOut, d("1"), d("1500"), d("800"), d("-2400"), valid, ErrNegativeBalance},
		{"main out exceeds balance", CalcBptInPerMainOut, d("1501"), d("1500"), d("800"), d("2400"), valid, ErrAmountTooBig},
		{"main out exceeds balance for wrapped", asPoolQuote(CalcWrappedInPerMainOut), d("1501"), d("1500"), zero, zero, valid, ErrAmountTooBig},
		{"wrapped out exceeds balance", CalcBptInPerWrappedOut, d("801"), d("1500"), d("800"), d("2400"), valid, ErrAmountTooBig},
		{"bpt in exceeds supply", CalcMainOutPerBptIn, d("2401"), d("1500"), d("800"), d("2400"), valid, ErrAmountTooBig},
		{"bpt in exceeds supply for wrapped", CalcWrappedOutPerBptIn, d("2401"), d("1500"), d("800"), d("2400"), valid, ErrAmountTooBig},
		{"not enough main for bpt", CalcMainOutPerBptIn, d("2400"), d("1500"), d("800"), d("2400"), valid, ErrInsufficientBalance},
		{"not enough wrapped for bpt", CalcWrappedOutPerBptIn, d("2400"), d("1500"), d("800"), d("2400"), valid, ErrInsufficientBalance},
		{"not enough main for wrapped", asPoolQuote(CalcMainOutPerWrappedIn), d("1500"), d("1500"), zero, zero, valid, ErrInsufficientBalance},
		{"burn with zero supply", CalcBptInPerMainOut, d("1"), d("1500"), d("800"), zero, valid, ErrZeroSupply},
		{"exit with zero supply", CalcMainOutPerBptIn, d("1"), d("1500"), d("800"), zero, valid, ErrZeroSupply},
		{"wrapped burn with zero supply", CalcBptInPerWrappedOut, d("1"), d("1500"), d("800"), zero, valid, ErrZeroSupply},
		{"wrapped exit with zero supply", CalcWrappedOutPerBptIn, d("1"), d("1500"), d("800"), zero, valid, ErrZeroSupply},
		{"join with zero invariant", CalcBptOutPerMainIn, d("1"), zero, zero, d("2400"), valid, ErrZeroInvariant},
		{"mint with zero invariant", CalcMainInPerBptOut, d("1"), zero, zero, d("2400"), valid, ErrZeroInvariant},
		{"wrapped join with zero invariant", CalcBptOutPerWrappedIn, d("1"), zero, zero, d("2400"), valid, ErrZeroInvariant},
		{"wrapped mint with zero invariant", CalcWrappedInPerBptOut, d("1"), zero, zero, d("2400"), valid, ErrZeroInvariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.quote(tt.amount, tt.main, tt.wrapped, tt.supply, tt.params)
			require.ErrorIs(t, err, tt.wantError)
			require.True(t, got.IsZero())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	for _, err := range []error{
		ErrInvalidFee, ErrInvalidRate, ErrInvalidTargets, ErrNegativeTarget,
		ErrNegativeAmount, ErrNegativeBalance, ErrAmountTooPrecise,
		ErrAmountTooBig, ErrInsufficientBalance,
	} {
		require.ErrorIs(t, err, ErrDomain)
		require.NotErrorIs(t, err, ErrDegenerateState)
	}
	for _, err := range []error{ErrZeroSupply, ErrZeroInvariant} {
		require.ErrorIs(t, err, ErrDegenerateState)
		require.NotErrorIs(t, err, ErrDomain)
	}
}

func TestCalcPoolRate(t *testing.T) {
	params := testParams[1]

	rate, err := CalcPoolRate(decimal.Zero, decimal.Zero, decimal.Zero, params)
	require.NoError(t, err)
	require.True(t, rate.Equal(mathutil.One))

	// invariant = 1500 + 0.02*1000 + 800*1.05 = 2360
	rate, err = CalcPoolRate(d("1500"), d("800"), d("2400"), params)
	require.NoError(t, err)
	require.Equal(t, "0.983333333333333333", rate.String())

	_, err = CalcPoolRate(d("-1"), d("800"), d("2400"), params)
	require.ErrorIs(t, err, ErrNegativeBalance)
}
