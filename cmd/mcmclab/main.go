package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mcmclab/internal/config"
	"github.com/san-kum/mcmclab/internal/driver"
	"github.com/san-kum/mcmclab/internal/mcmc"
	"github.com/san-kum/mcmclab/internal/stats"
	"github.com/san-kum/mcmclab/internal/storage"
	"github.com/san-kum/mcmclab/internal/viz"
)

var (
	dataDir    string
	targetName string
	steps      int
	seed       int64
	startX     float64
	startY     float64
	sigma      float64
	eps        float64
	leapfrog   int
	maxDepth   int
	deltaMax   float64
	grid       int
	trail      int
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mcmclab",
		Short: "MCMC sampling lab with live visualization",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mcmclab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [sampler]",
		Short: "run a sampling batch",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	addSamplingFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [sampler]",
		Short: "run a sampler with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSamplingFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 15, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot marginal histograms and traces for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export chain to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export chain to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [target] [sampler1] [sampler2] ...",
		Short: "compare samplers on the same target",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSamplers,
	}
	compareCmd.Flags().IntVar(&steps, "steps", 2000, "steps per sampler")
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets [sampler]",
		Short: "list available presets for a sampler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for sampler: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [sampler]",
		Short: "benchmark a sampler",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSampler,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, compareCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&targetName, "target", "gaussian", "target distribution")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&startX, "x", 0, "start x")
	cmd.Flags().Float64Var(&startY, "y", 0, "start y")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "rwmh proposal scale")
	cmd.Flags().Float64Var(&eps, "eps", config.DefaultEps, "step size (hmc/nuts/mala)")
	cmd.Flags().IntVar(&leapfrog, "leapfrog", config.DefaultLeapfrog, "hmc leapfrog steps")
	cmd.Flags().IntVar(&maxDepth, "max-depth", config.DefaultMaxDepth, "nuts max tree depth")
	cmd.Flags().Float64Var(&deltaMax, "delta-max", config.DefaultDeltaMax, "nuts divergence threshold")
	cmd.Flags().IntVar(&grid, "grid", config.DefaultGrid, "gibbs grid resolution")
	cmd.Flags().IntVar(&trail, "trail", config.DefaultTrail, "trail capacity")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file, and CLI flags, in increasing
// precedence, the same way the run command of every tool here does.
func buildConfig(cmd *cobra.Command, samplerName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Sampler = samplerName

	if preset != "" {
		p := config.GetPreset(samplerName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(samplerName))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Sampler = samplerName
	}

	if cmd.Flags().Changed("target") || cfg.Target == "" {
		cfg.Target = targetName
	}
	if cmd.Flags().Changed("steps") || cfg.Steps == 0 {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("trail") || cfg.Trail == 0 {
		cfg.Trail = trail
	}
	if cmd.Flags().Changed("x") {
		cfg.Start.X = startX
	}
	if cmd.Flags().Changed("y") {
		cfg.Start.Y = startY
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Params.Sigma = sigma
	}
	if cmd.Flags().Changed("eps") {
		cfg.Params.Eps = eps
	}
	if cmd.Flags().Changed("leapfrog") {
		cfg.Params.Leapfrog = leapfrog
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Params.MaxDepth = maxDepth
	}
	if cmd.Flags().Changed("delta-max") {
		cfg.Params.DeltaMax = deltaMax
	}
	if cmd.Flags().Changed("grid") {
		cfg.Params.Grid = grid
	}

	return cfg, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := driver.NewRegistry()
	s, err := registry.GetSampler(cfg.Sampler)
	if err != nil {
		return err
	}
	t, err := registry.GetTarget(cfg.Target)
	if err != nil {
		return err
	}
	cfg.Apply(s)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	d := driver.New(t, s, cfg.Trail)

	fmt.Printf("running %s on %s...\n", cfg.Sampler, cfg.Target)
	result, err := d.Run(context.Background(), driver.Config{
		Steps:         cfg.Steps,
		Seed:          cfg.Seed,
		Start:         cfg.StartPoint(),
		TrailCapacity: cfg.Trail,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Sampler, cfg.Target, cfg.Seed, result.Steps,
		result.AcceptanceRate, result.HasAcceptance, result.Chain)
	if err != nil {
		return err
	}

	mean := stats.Mean(result.Chain)
	std := stats.Std(result.Chain)

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("chain length: %d\n", len(result.Chain))
	if result.HasAcceptance {
		fmt.Printf("acceptance rate: %.3f\n", result.AcceptanceRate)
	}
	fmt.Printf("mean: (%.4f, %.4f)\n", mean.X, mean.Y)
	fmt.Printf("std:  (%.4f, %.4f)\n", std.X, std.Y)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := driver.NewRegistry()
	s, err := registry.GetSampler(cfg.Sampler)
	if err != nil {
		return err
	}
	t, err := registry.GetTarget(cfg.Target)
	if err != nil {
		return err
	}
	cfg.Apply(s)
	if seeder, ok := s.(mcmc.Seedable); ok && cfg.Seed != 0 {
		seeder.Seed(cfg.Seed)
	}

	d := driver.New(t, s, cfg.Trail)
	d.Reset(cfg.StartPoint())

	m := viz.NewModel(registry, d, cfg.Sampler, cfg.Target, cfg.StartPoint(), cfg.Trail, frameRate)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSAMPLER\tTARGET\tTIME\tSTEPS\tACCEPT")

	for _, run := range runs {
		accept := "-"
		if run.HasAcceptance {
			accept = fmt.Sprintf("%.3f", run.AcceptanceRate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Sampler,
			run.Target,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			accept,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	chain, err := st.LoadChain(args[0])
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("sampler: %s on %s\n", meta.Sampler, meta.Target)
	fmt.Printf("samples: %d\n\n", len(chain))

	xs := stats.Xs(chain)
	ys := stats.Ys(chain)

	plotHistogram("marginal x", xs)
	plotHistogram("marginal y", ys)

	graph := asciigraph.Plot(xs,
		asciigraph.Height(8), asciigraph.Width(80), asciigraph.Caption("x trace"))
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(ys,
		asciigraph.Height(8), asciigraph.Width(80), asciigraph.Caption("y trace"))
	fmt.Println(graph)

	return nil
}

func plotHistogram(caption string, values []float64) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	counts := stats.Histogram(values, lo, hi, 60)
	graph := asciigraph.Plot(counts,
		asciigraph.Height(8), asciigraph.Width(80), asciigraph.Caption(caption))
	fmt.Println(graph)
	fmt.Println()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	chain, err := st.LoadChain(args[0])
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "x", "y"}); err != nil {
		return err
	}
	for i, p := range chain {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	chain, err := st.LoadChain(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, chain)
}

func compareSamplers(cmd *cobra.Command, args []string) error {
	targetKey := args[0]
	samplerKeys := args[1:]

	registry := driver.NewRegistry()
	t, err := registry.GetTarget(targetKey)
	if err != nil {
		return err
	}

	fmt.Printf("comparing samplers on %s (%d steps, seed %d)\n\n", targetKey, steps, seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLER\tACCEPT\tMEAN\tSTD\tTIME")

	for _, name := range samplerKeys {
		s, err := registry.GetSampler(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		d := driver.New(t, s, config.DefaultTrail)
		result, err := d.Run(context.Background(), driver.Config{Steps: steps, Seed: seed})
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		accept := "-"
		if result.HasAcceptance {
			accept = fmt.Sprintf("%.3f", result.AcceptanceRate)
		}
		mean := stats.Mean(result.Chain)
		std := stats.Std(result.Chain)

		fmt.Fprintf(w, "%s\t%s\t(%.3f, %.3f)\t(%.3f, %.3f)\t%v\n",
			name, accept, mean.X, mean.Y, std.X, std.Y, result.Elapsed)
	}

	return w.Flush()
}

func benchSampler(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := driver.NewRegistry()

	stepCounts := []int{1000, 5000, 20000}
	targets := []string{"gaussian", "banana"}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tSTEPS\tTIME\tSTEPS/SEC")

	for _, targetKey := range targets {
		t, err := registry.GetTarget(targetKey)
		if err != nil {
			return err
		}
		for _, n := range stepCounts {
			s, err := registry.GetSampler(name)
			if err != nil {
				return err
			}

			d := driver.New(t, s, config.DefaultTrail)
			result, err := d.Run(context.Background(), driver.Config{Steps: n, Seed: 42})
			if err != nil {
				return err
			}

			perSec := float64(n) / result.Elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", targetKey, n, result.Elapsed, perSec)
		}
	}

	return w.Flush()
}
