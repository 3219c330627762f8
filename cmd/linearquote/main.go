package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/linear-pool/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "linearquote"
	app.Usage = "Command line interface to quote joins, exits and swaps of linear pools"
	app.Writer = w
	app.Flags = []cli.Flag{&unitsFlag}
	app.Before = initConfig
	app.Commands = append(
		app.Commands,
		&nominal,
		&invariant,
		&rate,
		&quoteCmd,
		&batch,
		&kinds,
	)
	return app
}

func initConfig(*cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	return nil
}

func printJSON(w io.Writer, resp interface{}) error {
	b, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		return fmt.Errorf("unable to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[linearquote] %v\n", err)
	}
	os.Exit(1)
}
