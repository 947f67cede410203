package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/wirecube/internal/anim"
	"github.com/san-kum/wirecube/internal/config"
	"github.com/san-kum/wirecube/internal/term"
	"github.com/san-kum/wirecube/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	increment  float64
	delay      time.Duration
	// snapshot
	angle float64
	// bench
	benchFrames int
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func main() {
	rootCmd := &cobra.Command{
		Use:           "wirecube",
		Short:         "rotating wireframe cube rendered as terminal text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLoop,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "frame width in characters")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "frame height in rows")
	rootCmd.PersistentFlags().Float64Var(&increment, "spin", config.DefaultAngleIncrement, "rotation per frame (radians)")
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", config.DefaultFrameDelay, "delay between frames")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "render the spinning cube until interrupted",
		RunE:  runLoop,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer with pause and speed controls",
		RunE:  runLive,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame to stdout",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle (radians)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure headless render throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 500, "number of frames to render")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSPIN\tDELAY")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%.4f\t%v\n",
					name, cfg.Width, cfg.Height, cfg.AngleIncrement, cfg.FrameDelay)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, snapshotCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wirecube failed")
	}
}

// loadConfig resolves preset, config file, and flags in that order;
// explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("spin") {
		cfg.AngleIncrement = increment
	}
	if cmd.Flags().Changed("delay") {
		cfg.FrameDelay = delay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLoop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	display := term.NewANSI(os.Stdout)
	loop, err := anim.New(cfg, display)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display.HideCursor()
	defer display.ShowCursor()

	log.Info().Int("width", cfg.Width).Int("height", cfg.Height).
		Dur("delay", cfg.FrameDelay).Msg("starting render loop")

	return loop.Run(ctx)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI composes the frame into its own view; no terminal display
	// collaborator is involved.
	loop, err := anim.New(cfg, term.NewANSI(os.Stdout))
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(loop), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loop, err := anim.New(cfg, term.NewANSI(os.Stdout))
	if err != nil {
		return err
	}
	loop.SetAngle(angle)

	fmt.Print(loop.Frame())
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", benchFrames)
	}

	loop, err := anim.New(cfg, term.NewANSI(os.Stdout))
	if err != nil {
		return err
	}

	times := make([]float64, 0, benchFrames)
	start := time.Now()
	for i := 0; i < benchFrames; i++ {
		fs := time.Now()
		loop.Frame()
		loop.Advance()
		times = append(times, float64(time.Since(fs).Microseconds())/1000)
	}
	elapsed := time.Since(start)

	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)
	total := 0.0
	for _, v := range times {
		total += v
	}

	fmt.Printf("rendered %d frames at %dx%d in %v\n\n", benchFrames, cfg.Width, cfg.Height, elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMEDIAN\tAVG\tMAX\tFRAMES/SEC")
	fmt.Fprintf(w, "%.3fms\t%.3fms\t%.3fms\t%.3fms\t%.0f\n",
		sorted[0],
		sorted[len(sorted)/2],
		total/float64(len(times)),
		sorted[len(sorted)-1],
		float64(benchFrames)/elapsed.Seconds(),
	)
	w.Flush()

	fmt.Println()
	graph := asciigraph.Plot(times,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame render time (ms)"),
	)
	fmt.Println(graph)

	return nil
}
