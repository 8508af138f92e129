package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/animator"
	"github.com/BrandonKowalski/curtain/pkg/curtain/overlay"
	"github.com/BrandonKowalski/curtain/pkg/curtain/snapshot"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var snapshotOpts struct {
	variant  string
	profile  string
	at       time.Duration
	width    int
	height   int
	frames   int
	backdrop string
	out      string
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render transition frames to PNG or SVG",
	Long: `Renders the overlay a /a -> /b route change produces, either as one frame
at --at or as --frames evenly spaced PNG frames written into the --out directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadConfig()
		if err != nil {
			return err
		}

		cfg := file.Transition
		if snapshotOpts.variant != "" {
			cfg.Variant = transition.Variant(snapshotOpts.variant)
		}
		if snapshotOpts.profile != "" {
			cfg.Profile = transition.Profile(snapshotOpts.profile)
		}

		panels := composePanels(cfg)
		if len(panels) == 0 {
			return fmt.Errorf("variant %q renders no panels", cfg.WithDefaults().Variant)
		}

		if snapshotOpts.frames > 0 {
			return writeSequence(panels)
		}
		return writeFrame(panels, snapshotOpts.at, snapshotOpts.out)
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapshotOpts.variant, "variant", "", "Variant to render (default from config)")
	f.StringVar(&snapshotOpts.profile, "profile", string(transition.ProfileExtended), "Profile that picks the variant when none is set")
	f.DurationVar(&snapshotOpts.at, "at", 0, "Offset of a single frame from the start of the transition")
	f.IntVar(&snapshotOpts.width, "width", 320, "Frame width in pixels")
	f.IntVar(&snapshotOpts.height, "height", 240, "Frame height in pixels")
	f.IntVar(&snapshotOpts.frames, "frames", 0, "Render this many frames instead of a single one")
	f.StringVar(&snapshotOpts.backdrop, "backdrop", "white", "Page color behind the overlay")
	f.StringVar(&snapshotOpts.out, "out", "curtain.png", "Output file, or directory with --frames; a .svg file writes SVG")
	rootCmd.AddCommand(snapshotCmd)
}

func writeFrame(panels []transition.Panel, at time.Duration, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		quads := overlay.Quads(animator.SampleAt(panels, at), int32(snapshotOpts.width), int32(snapshotOpts.height))
		return os.WriteFile(path, []byte(snapshot.SVG(quads, snapshotOpts.width, snapshotOpts.height)), 0o644)
	}

	img, err := snapshot.Frame(panels, at, snapshotOpts.width, snapshotOpts.height, overlay.ParseColor(snapshotOpts.backdrop))
	if err != nil {
		return err
	}
	return writePNG(path, img)
}

func writeSequence(panels []transition.Panel) error {
	frames, err := snapshot.Sequence(panels, snapshotOpts.frames, snapshotOpts.width, snapshotOpts.height, overlay.ParseColor(snapshotOpts.backdrop))
	if err != nil {
		return err
	}

	dir := snapshotOpts.out
	if filepath.Ext(dir) != "" {
		dir = strings.TrimSuffix(dir, filepath.Ext(dir))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return curtain.NewInfrastructureError("create_output_dir", err)
	}

	for i, img := range frames {
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("frame-%03d.png", i)), img); err != nil {
			return err
		}
	}
	curtain.GetLogger().Info("Wrote snapshot frames", "dir", dir, "count", len(frames))
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return curtain.NewInfrastructureError("create_png", err)
	}
	if err := snapshot.WritePNG(f, img); err != nil {
		_ = f.Close()
		return curtain.NewInfrastructureError("encode_png", err)
	}
	return f.Close()
}
