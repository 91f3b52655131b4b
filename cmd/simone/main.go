package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/simone/internal/analysis"
	"github.com/san-kum/simone/internal/config"
	"github.com/san-kum/simone/internal/curve"
	"github.com/san-kum/simone/internal/simone"
	"github.com/san-kum/simone/internal/storage"
	"github.com/san-kum/simone/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	a          float64
	b          float64
	iterations int

	// Point mode
	x0 float64
	y0 float64

	// Curve mode
	shapeName string
	points    int
	centerX   float64
	centerY   float64
	radius    float64
	radiusX   float64
	radiusY   float64
	lineX     float64
	lineY     float64
	lineStart float64
	lineEnd   float64
	startX    float64
	startY    float64
	endX      float64
	endY      float64

	frameRate int
	outFile   string
	savePath  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simone",
		Short: "explore the Simone attractor",
		Long: "simone iterates the map x' = sin(x\u00b2-y\u00b2+a), y' = cos(2xy+b)\n" +
			"from a point or a sampled curve and visualizes the result.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".simone", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a point trajectory",
		RunE:  runPoint,
	}
	addParamFlags(runCmd)
	runCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial x")
	runCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial y")
	runCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iteration count")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "evolve a sampled curve",
		RunE:  runCurve,
	}
	addParamFlags(curveCmd)
	addShapeFlags(curveCmd)
	curveCmd.Flags().IntVar(&iterations, "iterations", config.DefaultCurveIters, "iteration count")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a curve evolution",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	addShapeFlags(liveCmd)
	liveCmd.Flags().IntVar(&iterations, "iterations", config.DefaultCurveIters, "iteration count")
	liveCmd.Flags().IntVar(&frameRate, "fps", 4, "frames per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "time-series charts of a point run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase-space scatter of a point run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a point run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")
	exportCSVCmd.Flags().BoolVar(&savePath, "save", false, "write trajectory_a{a}_b{b}.csv in the working directory")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, mode := range []string{config.ModePoint, config.ModeCurve} {
				fmt.Printf("%s:\n", mode)
				for _, name := range config.ListPresets(mode) {
					cfg := config.GetPreset(mode, name)
					fmt.Printf("  %-10s a=%-6g b=%-6g iterations=%d\n", name, cfg.A, cfg.B, cfg.Iterations)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, curveCmd, liveCmd, listCmd, plotCmd, phaseCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&a, "a", config.DefaultA, "parameter a")
	cmd.Flags().Float64Var(&b, "b", config.DefaultB, "parameter b")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shapeName, "shape", "circle", "initial curve: circle, ellipse, hline, vline, diagonal")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "sample points along the curve")
	cmd.Flags().Float64Var(&centerX, "center-x", 0, "circle/ellipse center x")
	cmd.Flags().Float64Var(&centerY, "center-y", 0, "circle/ellipse center y")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "circle radius")
	cmd.Flags().Float64Var(&radiusX, "radius-x", config.DefaultRadius, "ellipse x radius")
	cmd.Flags().Float64Var(&radiusY, "radius-y", 0.5, "ellipse y radius")
	cmd.Flags().Float64Var(&lineX, "line-x", 0, "vertical line x")
	cmd.Flags().Float64Var(&lineY, "line-y", 0, "horizontal line y")
	cmd.Flags().Float64Var(&lineStart, "line-start", -1, "line start coordinate")
	cmd.Flags().Float64Var(&lineEnd, "line-end", 1, "line end coordinate")
	cmd.Flags().Float64Var(&startX, "start-x", -1, "diagonal start x")
	cmd.Flags().Float64Var(&startY, "start-y", -1, "diagonal start y")
	cmd.Flags().Float64Var(&endX, "end-x", 1, "diagonal end x")
	cmd.Flags().Float64Var(&endY, "end-y", 1, "diagonal end y")
}

// buildConfig merges defaults, preset, config file, and flags, in
// increasing priority. A flag explicitly set always wins.
func buildConfig(cmd *cobra.Command, mode string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Mode = mode

	if preset != "" {
		p := config.GetPreset(mode, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Mode = mode
	}

	if cmd.Flags().Changed("a") {
		cfg.A = a
	}
	if cmd.Flags().Changed("b") {
		cfg.B = b
	}
	if cmd.Flags().Changed("iterations") || (preset == "" && configFile == "") {
		cfg.Iterations = iterations
	}

	switch mode {
	case config.ModePoint:
		if cmd.Flags().Changed("x0") || (preset == "" && configFile == "") {
			cfg.Point.X0 = x0
		}
		if cmd.Flags().Changed("y0") || (preset == "" && configFile == "") {
			cfg.Point.Y0 = y0
		}
	case config.ModeCurve:
		if preset == "" && configFile == "" || cmd.Flags().Changed("shape") {
			cfg.Curve = curveConfigFromFlags()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func curveConfigFromFlags() config.CurveConfig {
	return config.CurveConfig{
		Shape:     shapeName,
		Points:    points,
		CenterX:   centerX,
		CenterY:   centerY,
		Radius:    radius,
		RadiusX:   radiusX,
		RadiusY:   radiusY,
		LineX:     lineX,
		LineY:     lineY,
		LineStart: lineStart,
		LineEnd:   lineEnd,
		StartX:    startX,
		StartY:    startY,
		EndX:      endX,
		EndY:      endY,
	}
}

func runPoint(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, config.ModePoint)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	traj, err := simone.Trajectory(cfg.InitialPoint(), cfg.Params(), cfg.Iterations)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	metrics := analysis.Summary(traj)
	runID, err := st.SaveTrajectory(cfg.Params(), cfg.InitialPoint(), cfg.Iterations, traj, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("computed %d states in %v\n", len(traj), elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for _, name := range []string{"path_length", "x_range", "y_range", "final_x", "final_y"} {
		fmt.Printf("  %s: %.6f\n", name, metrics[name])
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, config.ModeCurve)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	shape := cfg.Curve.ShapeOf()

	start := time.Now()
	seq, err := curve.EvolveShape(shape, cfg.Curve.Points, cfg.Params(), cfg.Iterations)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.SaveCurves(cfg.Params(), shape.Name(), cfg.Curve.Points, cfg.Iterations, seq)
	if err != nil {
		return err
	}

	final := analysis.BoundsOf(seq[len(seq)-1])
	fmt.Printf("evolved %s (%d points) through %d iterations in %v\n",
		shape.Name(), cfg.Curve.Points, cfg.Iterations, elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final frame spread: x %.4f, y %.4f\n", final.RangeX(), final.RangeY())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, config.ModeCurve)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.Curve.ShapeOf(), cfg.Curve.Points, cfg.Params(), cfg.Iterations, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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
	fmt.Fprintln(w, "ID\tMODE\tTIME\tA\tB\tITERS\tDETAIL")

	for _, run := range runs {
		detail := fmt.Sprintf("x0=%g y0=%g", run.X0, run.Y0)
		if run.Mode == "curve" {
			detail = fmt.Sprintf("%s x%d", run.Shape, run.Points)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%d\t%s\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.A,
			run.B,
			run.Iterations,
			detail,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Mode != "point" {
		return fmt.Errorf("run %s is a %s run; plot works on point runs", runID, meta.Mode)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("a=%.2f b=%.2f, %d states\n\n", meta.A, meta.B, len(traj))

	xs := make([]float64, len(traj))
	ys := make([]float64, len(traj))
	for i, p := range traj {
		xs[i] = p.X
		ys[i] = p.Y
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x(n) vs iteration"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y(n) vs iteration"),
	))
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Mode != "point" {
		return fmt.Errorf("run %s is a %s run; phase works on point runs", runID, meta.Mode)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("phase space: %s (a=%.2f b=%.2f)\n\n", meta.ID, meta.A, meta.B)
	fmt.Print(analysis.PhaseASCII(traj, 70, 20))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if meta.Mode != "point" {
		return fmt.Errorf("run %s is a %s run; export-csv works on point runs", runID, meta.Mode)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	par := simone.Params{A: meta.A, B: meta.B}
	path := outFile
	if savePath && path == "" {
		path = storage.TrajectoryCSVName(par)
	}
	if path == "" {
		return storage.WriteTrajectoryCSV(os.Stdout, traj)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := storage.WriteTrajectoryCSV(f, traj); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var traj []simone.Point
	var seq [][]simone.Point
	if meta.Mode == "point" {
		if traj, err = st.LoadTrajectory(runID); err != nil {
			return err
		}
	} else {
		if seq, err = st.LoadCurves(runID); err != nil {
			return err
		}
	}

	if outFile != "" {
		if err := storage.ExportJSON(outFile, meta, traj, seq); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	return storage.ExportJSONTo(os.Stdout, meta, traj, seq)
}
