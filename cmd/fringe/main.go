package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/sakshamxt/fringe/internal/config"
	"github.com/sakshamxt/fringe/internal/field"
	"github.com/sakshamxt/fringe/internal/grid"
	"github.com/sakshamxt/fringe/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	fps        int
	seed       int64
	tickInc    float64
	// offline rendering (slice, frame)
	cols    int
	rows    int
	at      float64
	slitCol int
)

// loadConfig resolves preset, config file and flag overrides in that
// order; explicit flags always win.
func loadConfig(cmd *cobra.Command, variant string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(variant, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(variant))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Variant = variant
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickIncrement = tickInc
	}
	if cfg.FPS < 1 || cfg.FPS > 120 {
		return nil, fmt.Errorf("fps out of range 1-120 (got %d)", cfg.FPS)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runWave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "wave")
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewWave(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "rain")
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewRain(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// offlineModel builds a field model for a fixed cell geometry, shared by
// the slice and frame commands.
func offlineModel(cmd *cobra.Command) (*field.Model, *config.Config, error) {
	cfg, err := loadConfig(cmd, "wave")
	if err != nil {
		return nil, nil, err
	}
	geo := grid.FromCells(cols, rows)
	if geo.Empty() {
		return nil, nil, fmt.Errorf("empty grid: %dx%d cells", cols, rows)
	}
	return field.New(geo, cfg.FieldParams()), cfg, nil
}

// runSlice plots the intensity profile across the screen line, the far
// edge of the propagation axis, where the fringe bands are the cleanest.
func runSlice(cmd *cobra.Command, args []string) error {
	m, _, err := offlineModel(cmd)
	if err != nil {
		return err
	}

	screen := slitCol
	if !cmd.Flags().Changed("screen") {
		if m.Orientation == grid.Horizontal {
			screen = m.Geo.Columns - 1
		} else {
			screen = m.Geo.Rows - 1
		}
	}

	var data []float64
	if m.Orientation == grid.Horizontal {
		for row := 0; row < m.Geo.Rows; row++ {
			if m.Kind(screen, row) == field.CellField {
				data = append(data, m.Intensity(m.Amplitude(screen, row, at)))
			}
		}
	} else {
		for col := 0; col < m.Geo.Columns; col++ {
			if m.Kind(col, screen) == field.CellField {
				data = append(data, m.Intensity(m.Amplitude(col, screen, at)))
			}
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("no field cells on screen line %d", screen)
	}

	caption := fmt.Sprintf("intensity across screen line %d (t=%.2f)", screen, at)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	))
	return nil
}

func runFrame(cmd *cobra.Command, args []string) error {
	m, _, err := offlineModel(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.PlainWave(m, at))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fringe",
		Short: "terminal wave-interference and digital-rain animations",
		RunE:  runWave,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (rain)")
	rootCmd.PersistentFlags().Float64Var(&tickInc, "tick", config.DefaultTickIncrement, "clock increment per frame")

	waveCmd := &cobra.Command{
		Use:   "wave",
		Short: "triple-slit interference animation",
		RunE:  runWave,
	}

	rainCmd := &cobra.Command{
		Use:   "rain",
		Short: "digital rain animation",
		RunE:  runRain,
	}

	sliceCmd := &cobra.Command{
		Use:   "slice",
		Short: "plot the fringe intensity profile for a fixed grid",
		RunE:  runSlice,
	}
	sliceCmd.Flags().IntVar(&cols, "cols", 80, "grid columns")
	sliceCmd.Flags().IntVar(&rows, "rows", 20, "grid rows")
	sliceCmd.Flags().Float64Var(&at, "time", 0, "animation clock value")
	sliceCmd.Flags().IntVar(&slitCol, "screen", 0, "screen line index (default: far edge)")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "print one unstyled frame for a fixed grid",
		RunE:  runFrame,
	}
	frameCmd.Flags().IntVar(&cols, "cols", 80, "grid columns")
	frameCmd.Flags().IntVar(&rows, "rows", 20, "grid rows")
	frameCmd.Flags().Float64Var(&at, "time", 0, "animation clock value")

	presetsCmd := &cobra.Command{
		Use:   "presets [variant]",
		Short: "list available presets for a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for variant: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(waveCmd, rainCmd, sliceCmd, frameCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
