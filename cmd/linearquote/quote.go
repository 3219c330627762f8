package main

import (
	"github.com/tdex-network/linear-pool/internal/core/application/quote"
	"github.com/tdex-network/linear-pool/internal/core/domain"
	"github.com/tdex-network/linear-pool/pkg/marketmaking"
	"github.com/urfave/cli/v2"
)

var quoteCmd = cli.Command{
	Name:  "quote",
	Usage: "quote a join, exit or swap of a linear pool",
	Flags: withPoolFlags(
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the known amount of the swap",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "kind",
			Usage: "the quote kind, see the kinds command",
		},
		&cli.StringFlag{
			Name:  "given",
			Usage: "whether the amount is the one sent (in) or received (out)",
			Value: marketmaking.GivenIn.String(),
		},
		&cli.StringFlag{
			Name:  "token_in",
			Usage: "the token sent to the pool: main, wrapped or bpt",
		},
		&cli.StringFlag{
			Name:  "token_out",
			Usage: "the token received from the pool: main, wrapped or bpt",
		},
	),
	Action: quoteAction,
}

func quoteAction(ctx *cli.Context) error {
	req, err := parseQuoteRequest(ctx)
	if err != nil {
		return err
	}

	svc, err := quote.NewService(1, nil)
	if err != nil {
		return err
	}

	result := svc.Quote(ctx.Context, req)
	if result.Err != nil {
		return result.Err
	}

	return printAmount(ctx, result.Amount)
}

func parseQuoteRequest(ctx *cli.Context) (domain.QuoteRequest, error) {
	req := domain.QuoteRequest{}

	switch {
	case ctx.IsSet("kind"):
		kind, err := marketmaking.ParseQuoteKind(ctx.String("kind"))
		if err != nil {
			return req, err
		}
		req.Kind = kind
	case ctx.IsSet("token_in") && ctx.IsSet("token_out"):
		swapKind, err := marketmaking.ParseSwapKind(ctx.String("given"))
		if err != nil {
			return req, err
		}
		req.SwapKind = swapKind
		req.TokenIn = marketmaking.Token(ctx.String("token_in"))
		req.TokenOut = marketmaking.Token(ctx.String("token_out"))
	default:
		return req, &invalidUsageError{ctx, ctx.Command.Name}
	}

	amount, err := parseAmount(ctx, "amount")
	if err != nil {
		return req, err
	}
	balances, err := getBalances(ctx)
	if err != nil {
		return req, err
	}
	params, err := getParams(ctx)
	if err != nil {
		return req, err
	}

	req.Amount = amount
	req.Balances = balances
	req.Params = params
	return req, nil
}
