package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/linear-pool/internal/core/domain"
	"github.com/tdex-network/linear-pool/pkg/marketmaking"
	"github.com/tdex-network/linear-pool/pkg/marketmaking/formula"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidConcurrency = errors.New("batch concurrency must be greater than zero")
)

// Service quotes swaps, joins and exits of linear pools. It holds no pool
// state: every request carries the balances and params to quote against.
type Service interface {
	Quote(ctx context.Context, req domain.QuoteRequest) domain.QuoteResult
	QuoteBatch(ctx context.Context, reqs []domain.QuoteRequest) []domain.QuoteResult
}

type service struct {
	strategy    *marketmaking.MakingStrategy
	metrics     *metrics
	concurrency int
}

// NewService returns a quote service evaluating batches with at most
// concurrency goroutines. Metrics are registered on the given registerer,
// if not nil.
func NewService(
	concurrency int, registerer prometheus.Registerer,
) (Service, error) {
	if concurrency <= 0 {
		return nil, ErrInvalidConcurrency
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &service{
		strategy:    marketmaking.NewLinearStrategy(),
		metrics:     m,
		concurrency: concurrency,
	}, nil
}

func (s *service) Quote(
	ctx context.Context, req domain.QuoteRequest,
) domain.QuoteResult {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	result := s.quote(ctx, req)
	s.metrics.observe(result)
	s.logResult(req, result)
	return result
}

// QuoteBatch quotes every request and returns results in the same order.
// A failing request doesn't affect the others, while a canceled context
// marks all the requests not yet evaluated as failed.
func (s *service) QuoteBatch(
	ctx context.Context, reqs []domain.QuoteRequest,
) []domain.QuoteResult {
	results := make([]domain.QuoteResult, len(reqs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i := range reqs {
		i := i
		eg.Go(func() error {
			results[i] = s.Quote(ctx, reqs[i])
			return nil
		})
	}
	// workers never fail, errors are reported per result
	_ = eg.Wait()

	log.Debugf("quoted batch of %d requests", len(reqs))
	return results
}

func (s *service) quote(
	ctx context.Context, req domain.QuoteRequest,
) domain.QuoteResult {
	result := domain.QuoteResult{ID: req.ID, Kind: req.Kind}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if req.IsSwap() {
		kind, err := marketmaking.QuoteKindFor(req.SwapKind, req.TokenIn, req.TokenOut)
		if err != nil {
			result.Err = err
			return result
		}
		result.Kind = kind
		result.Amount, result.Err = s.quoteSwap(req)
		return result
	}

	result.Amount, result.Err = marketmaking.Quote(
		req.Kind, req.Amount, req.Balances, req.Params,
	)
	return result
}

func (s *service) quoteSwap(req domain.QuoteRequest) (decimal.Decimal, error) {
	opts := marketmaking.LinearOpts{
		TokenIn:  req.TokenIn,
		TokenOut: req.TokenOut,
		Balances: req.Balances,
		Params:   req.Params,
	}
	if req.SwapKind == marketmaking.GivenOut {
		return s.strategy.Formula().InGivenOut(opts, req.Amount)
	}
	return s.strategy.Formula().OutGivenIn(opts, req.Amount)
}

func (s *service) logResult(req domain.QuoteRequest, result domain.QuoteResult) {
	entry := log.WithFields(log.Fields{
		"id":     result.ID,
		"kind":   result.Kind.String(),
		"amount": req.Amount.String(),
	})

	if result.Err == nil {
		entry.Debugf("quoted %s", result.Amount)
		return
	}
	if errors.Is(result.Err, formula.ErrDegenerateState) {
		entry.WithError(result.Err).Warn("quote failed on degenerate pool state")
		return
	}
	entry.WithError(result.Err).Debug("quote rejected")
}
