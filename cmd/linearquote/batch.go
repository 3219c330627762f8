package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/linear-pool/internal/config"
	"github.com/tdex-network/linear-pool/internal/core/application/quote"
	"github.com/tdex-network/linear-pool/internal/core/domain"
	"github.com/tdex-network/linear-pool/pkg/stats"
	"github.com/urfave/cli/v2"
)

var batch = cli.Command{
	Name:  "batch",
	Usage: "quote a JSON list of requests, results are printed in the same order",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Usage:    "path of the JSON file with the list of requests",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "dump the quote metrics to the configured stats file",
		},
	},
	Action: batchAction,
}

type batchResult struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Amount  string `json:"amount,omitempty"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

func batchAction(ctx *cli.Context) error {
	file, err := os.ReadFile(ctx.String("file"))
	if err != nil {
		return err
	}

	reqs := make([]domain.QuoteRequest, 0)
	if err := json.Unmarshal(file, &reqs); err != nil {
		return fmt.Errorf("invalid requests file: %w", err)
	}

	registry := prometheus.NewRegistry()
	svc, err := quote.NewService(config.GetInt(config.BatchConcurrencyKey), registry)
	if err != nil {
		return err
	}

	results := svc.QuoteBatch(ctx.Context, reqs)

	resp := make([]batchResult, 0, len(results))
	for _, r := range results {
		res := batchResult{
			ID:      r.ID,
			Kind:    r.Kind.String(),
			Outcome: r.Outcome(),
		}
		if r.Err != nil {
			res.Error = r.Err.Error()
		} else {
			res.Amount = r.Amount.String()
		}
		resp = append(resp, res)
	}

	if ctx.Bool("metrics") {
		path := config.GetString(config.StatsFileKey)
		if err := stats.DumpMetrics(path, registry); err != nil {
			return err
		}
		log.Infof("metrics dumped to %s", path)
		stats.PrintMemoryStatistics()
	}

	return printJSON(ctx.App.Writer, resp)
}
