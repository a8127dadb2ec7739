package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/toothsim/internal/config"
	"github.com/san-kum/toothsim/internal/driver"
	"github.com/san-kum/toothsim/internal/dynamo"
	"github.com/san-kum/toothsim/internal/export"
	"github.com/san-kum/toothsim/internal/observability"
	"github.com/san-kum/toothsim/internal/params"
	"github.com/san-kum/toothsim/internal/teeth"
	"github.com/san-kum/toothsim/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	preset     string
	forceN     float64
	angleDeg   float64
	stiffness  float64
	damping    float64
	teethCount int
	width      float64
	height     float64
	fps        int
	runFrames  int
	svgFrames  int
	plot       bool
	every      int
	logLevel   string
	logFile    string
	outPath    string
	exportDir  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "toothsim",
		Short:        "force on a row of teeth",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.Float64Var(&forceN, "force", config.DefaultForceN, "force magnitude (N)")
	pf.Float64Var(&angleDeg, "angle", config.DefaultAngleDeg, "force angle (degrees)")
	pf.Float64Var(&stiffness, "k", config.DefaultK, "stiffness scale (visual gain)")
	pf.Float64Var(&damping, "damping", config.DefaultDamping, "damping factor")
	pf.IntVar(&teethCount, "teeth", config.DefaultTeeth, "number of teeth")
	pf.Float64Var(&width, "width", config.DefaultWidth, "layout width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "layout height")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&logFile, "log-file", "", "rotate JSON logs into this file")
	rootCmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for exported frames")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless and print frames",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&runFrames, "frames", 120, "number of frames (0 = until interrupted)")
	runCmd.Flags().IntVar(&every, "every", 10, "print every n-th frame")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot the centre tooth offset after the run")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "simulate and export the final frame as svg",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntVar(&svgFrames, "frames", 60, "number of frames to simulate")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "toothsim.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFORCE\tANGLE\tK\tDAMPING\tTEETH")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(tw, "%s\t%.1f\t%.0f\t%.1f\t%.2f\t%d\n", name, p.ForceN, p.AngleDeg, p.K, p.Damping, p.TeethCount)
			}
			return tw.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := "toothsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, svgCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Params = p.Params
	}

	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Params.ForceN = forceN
	}
	if flags.Changed("angle") {
		cfg.Params.AngleDeg = angleDeg
	}
	if flags.Changed("k") {
		cfg.Params.K = stiffness
	}
	if flags.Changed("damping") {
		cfg.Params.Damping = damping
	}
	if flags.Changed("teeth") {
		cfg.Params.TeethCount = teethCount
	}
	if flags.Changed("width") {
		cfg.Layout.Width = width
	}
	if flags.Changed("height") {
		cfg.Layout.Height = height
	}
	if flags.Changed("fps") {
		cfg.Loop.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newTicker(cfg *config.Config) *driver.Ticker {
	return driver.NewTicker(teeth.New(), params.FromRaw(cfg.Params), cfg.Layout.Width, cfg.Layout.Height, cfg.Loop.MaxDt)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The terminal belongs to the view, so only file logging is kept.
	logger, err := observability.NewLogger(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting interactive view", zap.Int("teeth", cfg.Params.TeethCount))
	return viz.Run(viz.Options{
		Ticker:       newTicker(cfg),
		FPS:          cfg.Loop.FPS,
		StartupDelay: cfg.Loop.StartupDelay,
		ExportDir:    exportDir,
		Logger:       logger,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := observability.Stderr(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if every < 1 {
		every = 1
	}
	var (
		n       int
		warned  bool
		history []float64
	)
	ticker := newTicker(cfg)
	render := driver.RenderFunc(func(f driver.Frame) error {
		offset, disp, err := centreTooth(ticker.Simulation(), f.Positions)
		if err != nil {
			return err
		}
		if !disp.IsValid() && !warned {
			logger.Warn("centre tooth displacement is not finite", zap.Int("frame", n), zap.Stringer("disp", disp))
			warned = true
		}
		history = append(history, offset)
		if n%every == 0 {
			fmt.Printf("%5d  dt=%.4f  %s  disp=%s  %s\n", n, f.DT, f.Info, disp, formatPositions(f.Positions))
		}
		n++
		return nil
	})

	loop := driver.NewLoop(ticker, render, driver.Options{
		FrameInterval: cfg.FrameInterval(),
		StartupDelay:  cfg.Loop.StartupDelay,
		MaxFrames:     runFrames,
		Logger:        logger,
	})

	start := time.Now()
	if err := loop.Run(ctx); err != nil {
		return err
	}
	logger.Info("run finished", zap.Int("frames", n), zap.Duration("elapsed", time.Since(start)))

	if plot && len(history) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("centre tooth x offset"),
		))
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := observability.Stderr(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ticker := newTicker(cfg)
	dt := cfg.FrameInterval().Seconds()
	if dt > cfg.Loop.MaxDt {
		dt = cfg.Loop.MaxDt
	}
	frame := ticker.Advance(0)
	for i := 0; i < svgFrames; i++ {
		frame = ticker.Advance(dt)
	}

	if err := export.WriteFrame(outPath, frame.Positions, cfg.Layout.Width, cfg.Layout.Height); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	logger.Info("frame exported", zap.String("path", outPath), zap.Int("frames", svgFrames), zap.String("info", frame.Info))
	return nil
}

// centreTooth returns the middle tooth's rendered x offset from its base
// and its physical displacement. An empty row reports zeros.
func centreTooth(sim *teeth.Simulation, ps []teeth.Position) (float64, dynamo.Vec2, error) {
	if len(ps) == 0 {
		return 0, dynamo.Vec2{}, nil
	}
	mid := len(ps) / 2
	b, err := sim.Body(mid)
	if err != nil {
		return 0, dynamo.Vec2{}, err
	}
	return ps[mid].X - b.Base.X, b.Disp, nil
}

func formatPositions(ps []teeth.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("(%g,%g)", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
