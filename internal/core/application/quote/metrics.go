package quote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdex-network/linear-pool/internal/core/domain"
)

type metrics struct {
	quotes *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	quotes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linear",
			Name:      "quotes_total",
			Help:      "Number of quotes computed, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
	if registerer != nil {
		if err := registerer.Register(quotes); err != nil {
			return nil, err
		}
	}
	return &metrics{quotes}, nil
}

func (m *metrics) observe(result domain.QuoteResult) {
	m.quotes.WithLabelValues(result.Kind.String(), result.Outcome()).Inc()
}
