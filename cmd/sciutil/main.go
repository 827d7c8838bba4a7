// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sciutil is a command line front end for the toolkit: it describes
// number streams, draws inverse-CDF samples from tabulated densities,
// fits polynomials, and converts cosmological distances.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/acollier/go-sciutil/cosmo"
	"github.com/acollier/go-sciutil/fit"
	"github.com/acollier/go-sciutil/sample"
	"github.com/acollier/go-sciutil/stats"
)

var log = logging.MustGetLogger("sciutil")

func main() {
	app := &cli.App{
		Name:  "sciutil",
		Usage: "small scientific utilities",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug output",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			describeCommand,
			sampleCommand,
			fitCommand,
			cosmoCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	level := logging.WARNING
	if ctx.Bool("verbose") {
		level = logging.DEBUG
	}
	backend := logging.AddModuleLevel(logging.NewLogBackend(os.Stderr, "", 0))
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}

var describeCommand = &cli.Command{
	Name:      "describe",
	Usage:     "summarize newline-separated numbers from a file or stdin",
	ArgsUsage: "[file]",
	Action:    describeAction,
}

func describeAction(ctx *cli.Context) error {
	cols, err := readColumns(ctx.Args().First(), 1)
	if err != nil {
		return err
	}
	xs := cols[0]
	if len(xs) == 0 {
		return fmt.Errorf("no input values")
	}
	log.Debugf("read %d values", len(xs))

	mean, median, mode, err := stats.MeanMedianMode(xs)
	if err != nil {
		return err
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	quantile := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"statistic", "value"})
	t.AppendRows([]table.Row{
		{"n", len(xs)},
		{"sum", floats.Sum(xs)},
		{"mean", mean},
		{"median", median},
		{"mode", mode},
		{"variance", stat.Variance(xs, nil)},
		{"min", sorted[0]},
		{"25%", quantile(0.25)},
		{"75%", quantile(0.75)},
		{"max", sorted[len(sorted)-1]},
	})
	t.Render()
	return nil
}

var sampleCommand = &cli.Command{
	Name:      "sample",
	Usage:     "draw inverse-CDF samples from \"x y\" density rows",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "n", Value: 1000, Usage: "number of samples"},
		&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "random seed"},
	},
	Action: sampleAction,
}

func sampleAction(ctx *cli.Context) error {
	cols, err := readColumns(ctx.Args().First(), 2)
	if err != nil {
		return err
	}
	d, err := sample.NewInverseCDFSeed(cols[0], cols[1], ctx.Uint64("seed"))
	if err != nil {
		return err
	}
	cdf := d.CDF()
	log.Debugf("built CDF over [%g, %g] from %d points", cdf[0], cdf[len(cdf)-1], len(cdf))

	for _, s := range d.SampleN(ctx.Int("n")) {
		fmt.Println(strconv.FormatFloat(s, 'g', -1, 64))
	}
	return nil
}

var fitCommand = &cli.Command{
	Name:      "fit",
	Usage:     "least-squares polynomial fit of \"x y yerr\" rows",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "order", Value: 1, Usage: "polynomial order"},
	},
	Action: fitAction,
}

func fitAction(ctx *cli.Context) error {
	cols, err := readColumns(ctx.Args().First(), 3)
	if err != nil {
		return err
	}
	res, err := fit.Poly(cols[0], cols[1], cols[2], ctx.Int("order"))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"term", "coefficient", "uncertainty"})
	for j, c := range res.Coeffs {
		t.AppendRow(table.Row{fmt.Sprintf("x^%d", j), c, res.Uncerts[j]})
	}
	t.AppendFooter(table.Row{"chisq", res.ChiSq, ""})
	t.AppendFooter(table.Row{"red. chisq", res.RedChiSq, ""})
	t.Render()
	return nil
}

var cosmoCommand = &cli.Command{
	Name:  "cosmo",
	Usage: "convert between redshift and comoving distance",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "cosmology", Value: "Planck18", Usage: "named parameter set"},
	},
	Subcommands: []*cli.Command{
		{
			Name:      "z2d",
			Usage:     "redshift to comoving Mpc",
			ArgsUsage: "z",
			Action: func(ctx *cli.Context) error {
				c, z, err := cosmoArgs(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%g\n", c.ComovingDistance(z))
				return nil
			},
		},
		{
			Name:      "d2z",
			Usage:     "comoving Mpc to redshift",
			ArgsUsage: "mpc",
			Action: func(ctx *cli.Context) error {
				c, d, err := cosmoArgs(ctx)
				if err != nil {
					return err
				}
				z, err := c.ZAtComovingDistance(d)
				if err != nil {
					return err
				}
				fmt.Printf("%g\n", z)
				return nil
			},
		},
	},
}

func cosmoArgs(ctx *cli.Context) (cosmo.FLRW, float64, error) {
	c, err := cosmo.ByName(ctx.String("cosmology"))
	if err != nil {
		return cosmo.FLRW{}, 0, err
	}
	if ctx.NArg() != 1 {
		return cosmo.FLRW{}, 0, fmt.Errorf("expected exactly one value argument")
	}
	v, err := strconv.ParseFloat(ctx.Args().First(), 64)
	if err != nil {
		return cosmo.FLRW{}, 0, err
	}
	log.Debugf("using %s (H0=%g, Om0=%g)", c.Name, c.H0, c.Om0)
	return c, v, nil
}
