// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kmerge/bench"
	"github.com/katalvlaran/kmerge/config"
	"github.com/katalvlaran/kmerge/fit"
	"github.com/katalvlaran/kmerge/report"
)

// errNoRecords is returned when every scale point was skipped.
var errNoRecords = errors.New("no scale point produced a measurement")

// runFlags mirrors config.Config; only flags the user set override the file.
type runFlags struct {
	configPath string
	preset     string
	variant    string
	nValues    []int
	maxSize    int
	maxLen     int
	maxValue   int
	seed       int64
	trials     int
	policy     string
	refIndex   int
	csvPath    string
	chart      bool
	logLevel   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f runFlags

	root := &cobra.Command{
		Use:   "mergebench",
		Short: "Validate the O(n log n) cost of heap-based k-way merging",
		Long: "mergebench generates k sorted inputs per scale value, times the\n" +
			"min-heap merge, and fits the measurements to n·log₂(n).",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, &f, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML sweep file applied over the preset")
	fl.StringVar(&f.preset, "preset", config.DefaultPreset, "named preset: "+strings.Join(config.PresetNames(), ", "))
	fl.StringVar(&f.variant, "variant", "", "engine variant: sizes or sequences")
	fl.IntSliceVar(&f.nValues, "n", nil, "comma-separated scale values (each ≥ 2)")
	fl.IntVar(&f.maxSize, "max-size", 0, "upper bound of generated list sizes")
	fl.IntVar(&f.maxLen, "max-len", 0, "upper bound of generated sequence lengths")
	fl.IntVar(&f.maxValue, "max-value", 0, "upper bound of generated element values")
	fl.Int64Var(&f.seed, "seed", 0, "generator seed (0 = default seed)")
	fl.IntVar(&f.trials, "trials", 0, "timed trials per scale value; the fastest is kept")
	fl.StringVar(&f.policy, "fit", "", "fitting policy: least-squares or midpoint-ratio")
	fl.IntVar(&f.refIndex, "ref-index", fit.MiddleIndex, "midpoint-ratio reference index (-1 = middle)")
	fl.StringVar(&f.csvPath, "csv", "", "write the series as CSV to this path")
	fl.BoolVar(&f.chart, "chart", true, "print a text chart of both curves")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newPresetsCmd(stdout))

	return root
}

func newPresetsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in sweep presets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range config.PresetNames() {
				cfg, err := config.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%-12s variant=%-9s fit=%-14s n=%v\n",
					name, cfg.Variant, cfg.Fit.Policy, cfg.NValues)
			}

			return nil
		},
	}
}

// resolveConfig layers preset, file and changed flags.
func resolveConfig(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	cfg, err := config.Preset(f.preset)
	if err != nil {
		return config.Config{}, err
	}
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath, cfg); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("variant") {
		cfg.Variant = f.variant
	}
	if changed("n") {
		cfg.NValues = f.nValues
	}
	if changed("max-size") {
		cfg.MaxSize = f.maxSize
	}
	if changed("max-len") {
		cfg.MaxLen = f.maxLen
	}
	if changed("max-value") {
		cfg.MaxValue = f.maxValue
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("trials") {
		cfg.Trials = f.trials
	}
	if changed("fit") {
		cfg.Fit.Policy = f.policy
	}
	if changed("ref-index") {
		cfg.Fit.RefIndex = f.refIndex
	}
	if changed("csv") {
		cfg.CSV = f.csvPath
	}
	if changed("chart") {
		cfg.Chart = f.chart
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func runSweep(cmd *cobra.Command, f *runFlags, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, f.logLevel)
	if err != nil {
		return err
	}

	// 1) Configuration.
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	bc, err := cfg.BenchConfig()
	if err != nil {
		return err
	}
	fo, err := cfg.FitOptions()
	if err != nil {
		return err
	}
	logger.Info("configuration resolved",
		"variant", bc.Variant.String(),
		"n_values", bc.NValues,
		"seed", bc.Seed,
		"fit", fo.Policy.String())

	// 2) Sweep.
	h, err := bench.New(bc,
		bench.WithLogger(logger),
		bench.WithProgress(func(rec bench.RunRecord) { report.Progress(stdout, rec) }))
	if err != nil {
		return err
	}
	rep := h.Run()
	if len(rep.Records) == 0 {
		return errNoRecords
	}
	fmt.Fprintln(stdout)

	// 3) Fit.
	ns, times, _ := rep.Series()
	res, err := fit.Fit(ns, times, fo)
	if err != nil {
		return err
	}

	// 4) Report.
	series, err := report.NewSeries(rep, res)
	if err != nil {
		return err
	}
	sinks := []report.Sink{report.NewConsole(stdout)}
	if cfg.Chart {
		sinks = append(sinks, report.SinkFunc(func(s report.Series) error {
			fmt.Fprintln(stdout)
			return report.NewChart(stdout).Render(s)
		}))
	}
	if cfg.CSV != "" {
		file, err := os.Create(cfg.CSV)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer file.Close()
		sinks = append(sinks, report.NewCSV(file))
		logger.Info("writing csv", "path", cfg.CSV)
	}

	return report.Multi(sinks...).Render(series)
}
