// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/montecarlo/analyzer"
	"github.com/katalvlaran/montecarlo/builder"
	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
	"github.com/katalvlaran/montecarlo/internal/logging"
	"github.com/katalvlaran/montecarlo/report"
	"github.com/katalvlaran/montecarlo/scenario"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	errNoScenario = errors.New("montecarlo: --scenario is required")
	errNoRolls    = errors.New("montecarlo: scenario sets no rolls; pass --rolls")
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Usage: "report `FORMAT` (text or json); defaults to MONTECARLO_FORMAT",
		},
		cli.StringFlag{
			Name:  "shape",
			Usage: "also print the recent play as a `SHAPE` (wide or narrow) table",
		},
	}
}

func runCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "run",
		Usage: "play a YAML scenario and report its statistics",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "scenario, s",
				Usage: "load the scenario from `FILE`",
			},
			cli.IntFlag{
				Name:  "rolls, n",
				Usage: "override the scenario's roll count",
			},
			cli.Int64Flag{
				Name:  "seed",
				Usage: "override the scenario's seed",
			},
		}, outputFlags()...),
		Action: e.run,
	}
}

func rollCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "roll",
		Usage: "roll fair numbered dice without a scenario file",
		Flags: append([]cli.Flag{
			cli.IntFlag{
				Name:  "sides",
				Value: 6,
				Usage: "faces per die",
			},
			cli.IntFlag{
				Name:  "count, c",
				Value: 2,
				Usage: "number of dice",
			},
			cli.IntFlag{
				Name:  "rolls, n",
				Value: 100,
				Usage: "number of rolls",
			},
			cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for reproducible rolls; defaults to MONTECARLO_SEED",
			},
		}, outputFlags()...),
		Action: e.roll,
	}
}

// run: --rolls replaces the file's rolls, which must be set otherwise.
// The --seed flag wins over the file's seed, which wins over MONTECARLO_SEED.
func (e *env) run(c *cli.Context) error {
	path := c.String("scenario")
	fields := logrus.Fields{"scenario": path}
	if path == "" {
		return e.fail(fields, errNoScenario)
	}

	s, err := scenario.Load(path)
	if err != nil {
		return e.fail(fields, err)
	}
	switch {
	case c.IsSet("rolls"):
		s.Rolls = c.Int("rolls")
	case s.Rolls == 0:
		return e.fail(fields, errNoRolls)
	}
	switch {
	case c.IsSet("seed"):
		s.Seed = c.Int64("seed")
	case s.Seed == 0:
		s.Seed = e.settings.Seed
	}

	g, err := s.Build()
	if err != nil {
		return e.fail(fields, err)
	}

	return play(e, c, g, s.Rolls, s.Name)
}

func (e *env) roll(c *cli.Context) error {
	sides, count := c.Int("sides"), c.Int("count")
	fields := logrus.Fields{"sides": sides, "dice": count}

	var opts []builder.BuilderOption
	seed := e.settings.Seed
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	if seed != 0 {
		opts = append(opts, builder.WithSeed(seed))
	}

	dice, err := builder.NumberedSet(count, sides, opts...)
	if err != nil {
		return e.fail(fields, err)
	}
	g, err := game.New(dice, game.WithFaceCheck())
	if err != nil {
		return e.fail(fields, err)
	}

	return play(e, c, g, c.Int("rolls"), "")
}

// play rolls g, then writes the report and the optional recent-play table.
func play[F die.Face](e *env, c *cli.Context, g *game.Game[F], rolls int, title string) error {
	runID := uuid.New()
	e.log.AddHook(logging.NewFieldHook("run_id", runID.String()))
	fields := logrus.Fields{"dice": g.NumDice(), "rolls": rolls}
	if title != "" {
		fields["scenario"] = title
	}

	format, err := report.ParseFormat(firstNonEmpty(c.String("format"), e.settings.Format))
	if err != nil {
		return e.fail(fields, err)
	}
	var shape game.Shape
	if c.IsSet("shape") {
		if shape, err = game.ParseShape(c.String("shape")); err != nil {
			return e.fail(fields, err)
		}
	}

	e.log.WithFields(fields).Debug("playing")
	if err = g.Play(rolls); err != nil {
		return e.fail(fields, err)
	}

	a, err := analyzer.New(g)
	if err != nil {
		return e.fail(fields, err)
	}
	summary, err := a.Summarize()
	if err != nil {
		return e.fail(fields, err)
	}
	e.log.WithFields(fields).WithField("jackpots", summary.Jackpots).Info("played")

	out := c.App.Writer
	if err = report.Render(out, summary, format, report.WithRunID(runID), report.WithTitle(title)); err != nil {
		return e.fail(fields, err)
	}
	if shape != "" {
		return renderRecent(e, out, g, shape, fields)
	}
	return nil
}

func renderRecent[F die.Face](e *env, out io.Writer, g *game.Game[F], shape game.Shape, fields logrus.Fields) error {
	t, err := g.ShowRecentPlay(shape)
	if err != nil {
		return e.fail(fields, err)
	}
	if _, err = io.WriteString(out, "\n"); err != nil {
		return e.fail(fields, err)
	}
	if err = report.RenderTable[F](out, t); err != nil {
		return e.fail(fields, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
