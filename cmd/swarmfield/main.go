package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/swarmfield/internal/bench"
	"github.com/san-kum/swarmfield/internal/config"
	"github.com/san-kum/swarmfield/internal/engine"
	"github.com/san-kum/swarmfield/internal/export"
	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/gui"
	"github.com/san-kum/swarmfield/internal/particle"
	"github.com/san-kum/swarmfield/internal/render"
	"github.com/san-kum/swarmfield/internal/storage"
	"github.com/san-kum/swarmfield/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	count      int
	ticks      int
	workers    int
	svgPath     string
	svgSize     float64
	snapshotOut string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swarmfield",
		Short: "ambient particle swarm with morphing formations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, seed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".swarmfield", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&count, "count", 0, "override particle count")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, seed)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "interactive raylib window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, seed)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run benchmark scenarios headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 0, "override scenario tick count")
	runCmd.Flags().IntVar(&workers, "workers", 2, "parallel scenario workers")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved benchmark runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's frame times",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes [shape]",
		Short: "preview a formation, or list all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewShape,
	}
	shapesCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG preview to this path")
	shapesCmd.Flags().Float64Var(&svgSize, "svg-size", 512, "SVG canvas size in px")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [shape]",
		Short: "settle a formation headless and export an SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotShape,
	}
	snapshotCmd.Flags().StringVar(&snapshotOut, "svg", "snapshot.svg", "output path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(" ", p)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, listCmd, plotCmd, shapesCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and flag overrides, in that
// precedence order (later wins).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if count > 0 {
		cfg.Count = count
	}
	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scenarios := bench.DefaultScenarios()
	if len(args) == 1 {
		found := false
		for _, sc := range scenarios {
			if sc.Name == args[0] {
				scenarios = []bench.Scenario{sc}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown scenario %q", args[0])
		}
	}
	if ticks > 0 {
		for i := range scenarios {
			scenarios[i].Ticks = ticks
		}
	}

	results, err := bench.RunAll(context.Background(), scenarios, cfg, seed, workers)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTICKS\tSHAPE\tTIER\tCOUNT\tMEAN MS\tMAX MS\tRUN ID")
	for _, res := range results {
		id, err := store.Save(res, seed)
		if err != nil {
			return fmt.Errorf("save %s: %w", res.Name, err)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%.2f\t%.2f\t%s\n",
			res.Name, res.Ticks, res.FinalShape, res.FinalTier, res.FinalCount,
			res.MeanFrameMs, res.MaxFrameMs, id)
	}
	w.Flush()

	if len(results) == 1 && len(results[0].FrameSeries) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(results[0].FrameSeries,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("frame time (ms)")))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tWHEN\tSCENARIO\tTIER\tMEAN MS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Result.Name, r.Result.FinalTier, r.Result.MeanFrameMs)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	series, err := storage.New(dataDir).Frames(args[0])
	if err != nil {
		return err
	}
	if len(series) < 2 {
		return fmt.Errorf("run %s has no frame series", args[0])
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(args[0]+" frame time (ms)")))
	return nil
}

func previewShape(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, s := range formation.Shapes() {
			fmt.Println(" ", s)
		}
		return nil
	}
	shape, ok := formation.Parse(args[0])
	if !ok {
		return fmt.Errorf("unknown shape %q", args[0])
	}

	if svgPath != "" {
		svg := export.FormationToSVG(shape, 400, svgSize)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Println("wrote", svgPath)
		return nil
	}

	canvas := render.NewCanvas(72, 20)
	w, h := canvas.Size()
	radius := float64(h) * 0.45
	pts := formation.Generate(shape, 300, radius)
	for _, pt := range pts {
		canvas.Dot(pt.X+float64(w)/2, pt.Y+float64(h)/2, 1, render.MoodPalette("neutral").Accent(), 1, false)
	}
	fmt.Println(canvas.String())
	return nil
}

// snapshotShape runs the engine headless until the formation settles,
// then exports the particle cloud as an SVG.
func snapshotShape(cmd *cobra.Command, args []string) error {
	shape, ok := formation.Parse(args[0])
	if !ok {
		return fmt.Errorf("unknown shape %q", args[0])
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	surf := render.Discard{W: 800, H: 600}
	eng, err := engine.New(surf, engine.Options{Config: cfg, Seed: seed})
	if err != nil {
		return err
	}
	eng.Morph(shape)
	for i := 0; i < 600; i++ {
		if err := eng.Tick(1.0 / 60); err != nil {
			return err
		}
	}

	svg := export.SnapshotToSVG(eng.Snapshot(), particle.Bounds{W: 800, H: 600},
		render.MoodPalette(eng.Mood()), 1)
	if err := os.WriteFile(snapshotOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Println("wrote", snapshotOut)
	return nil
}
