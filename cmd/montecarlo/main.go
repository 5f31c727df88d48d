// SPDX-License-Identifier: MIT

// Command montecarlo plays dice scenarios and prints their statistics.
//
//	montecarlo run --scenario coins.yaml --rolls 10000 --format json
//	montecarlo roll --sides 6 --count 3 --rolls 1000
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/montecarlo/internal/config"
	"github.com/katalvlaran/montecarlo/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := newApp(settings, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// env carries what every command needs once the global flags are parsed.
type env struct {
	settings config.Settings
	stderr   io.Writer
	log      *logrus.Logger
}

func newApp(settings config.Settings, stdout, stderr io.Writer) *cli.App {
	e := &env{settings: settings, stderr: stderr}

	app := cli.NewApp()

	// base application info
	app.Name = "montecarlo"
	app.Version = version
	app.Usage = "weighted dice Monte Carlo simulator"
	app.Writer = stdout
	app.ErrWriter = stderr

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: settings.LogLevel,
			Usage: "log `LEVEL` (debug, info, warn, error)",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: settings.LogFormat,
			Usage: "log `FORMAT` (text or json)",
		},
	}

	app.Before = e.setup
	app.Commands = []cli.Command{
		runCommand(e),
		rollCommand(e),
	}

	return app
}

// setup builds the logger from the global flags. cli prints a returned
// error together with the usage text.
func (e *env) setup(c *cli.Context) error {
	log, err := logging.New(e.stderr, c.GlobalString("log-level"), c.GlobalString("log-format"))
	if err != nil {
		return err
	}
	e.log = log
	return nil
}

// fail logs err and returns it so the process exits non-zero.
func (e *env) fail(fields logrus.Fields, err error) error {
	e.log.WithFields(fields).WithError(err).Error("command failed")
	return err
}
