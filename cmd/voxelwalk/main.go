// voxelwalk - Walk a voxel world in your terminal.
// A random heightmap is meshed into flat-shaded triangles and drawn back to
// front with half-block characters.
//
// Controls:
//
//	W/A/S/D     - Walk (fly in --fly mode)
//	Space       - Jump
//	E/Q         - Rise/sink (--fly mode only)
//	Arrow keys  - Look around
//	Mouse       - Look around
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taigrr/voxelwalk/pkg/config"
)

var version = "dev"

// options are the flags shared by every command.
type options struct {
	configPath string
	seed       int64
	fly        bool
	fov        float64
	fps        int
	boundary   string
	props      []string
}

var (
	info = color.New(color.FgCyan)
	ok   = color.New(color.FgGreen)
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "voxelwalk",
		Short: "Walk a voxel world in your terminal",
		Long: `voxelwalk generates a random voxel heightmap and lets you walk on it.

Controls: W/A/S/D walk, Space jumps, arrows or mouse look, Esc quits.
With --fly the camera flies freely and E/Q rise and sink.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.Int64Var(&opts.seed, "seed", 0, "terrain seed (default from config)")
	f.BoolVar(&opts.fly, "fly", false, "fly freely instead of walking")
	f.Float64Var(&opts.fov, "fov", 0, "horizontal field of view in degrees")
	f.IntVar(&opts.fps, "fps", 0, "target frames per second")
	f.StringVar(&opts.boundary, "boundary", "", "grid edge faces: open or sealed")
	f.StringSliceVar(&opts.props, "prop", nil, "GLB/GLTF model to place at the world center (repeatable)")

	root.AddCommand(newSnapshotCmd(opts), newConfigCmd(opts))
	return root
}

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		out           string
		width, height int
		ticks         int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			w, err := newWorld(cfg)
			if err != nil {
				return err
			}
			if err := w.snapshot(out, width, height, ticks); err != nil {
				return err
			}
			ok.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%dx%d, %d triangles)\n", out, width, height, w.camera.Scene().Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "frame.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 320, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 180, "image height in pixels")
	cmd.Flags().IntVar(&ticks, "ticks", 60, "physics ticks to run before rendering")
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// load reads the config file and applies any flags the user set.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.World.Seed = o.seed
	}
	if flags.Changed("fly") {
		cfg.Player.Enabled = !o.fly
	}
	if flags.Changed("fov") {
		cfg.View.FOV = o.fov
	}
	if flags.Changed("fps") {
		cfg.View.FPS = o.fps
	}
	if flags.Changed("boundary") {
		cfg.World.Boundary = o.boundary
	}
	for _, p := range o.props {
		cfg.Props = append(cfg.Props, config.Prop{Path: p, Size: 2 * cfg.World.BlockSize})
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
