package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/config"
	"github.com/BrandonKowalski/curtain/pkg/curtain/locale"
	"github.com/BrandonKowalski/curtain/pkg/curtain/metrics"
	"github.com/BrandonKowalski/curtain/pkg/curtain/router"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

func TestPrintVariants(t *testing.T) {
	l, err := locale.New("en")
	require.NoError(t, err)

	var buf bytes.Buffer
	printVariants(&buf, l, termenv.Ascii)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+len(transition.Variants()))
	assert.Contains(t, lines[0], "Panels")
	assert.Contains(t, lines[4], "multiBlock")
	assert.Contains(t, lines[4], "minimal,extended")
	assert.Contains(t, lines[1], "Fade")
	assert.NotContains(t, lines[1], "minimal")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestComposePanels(t *testing.T) {
	assert.Len(t, composePanels(transition.Config{Variant: transition.VariantBlinds}), 5)
	assert.Len(t, composePanels(transition.Config{Variant: transition.VariantSpiral}), 1)
	assert.Len(t, composePanels(transition.Config{Profile: transition.ProfileExtended}), 1)
	assert.Empty(t, composePanels(transition.Config{Variant: "wipe"}))
}

func TestWriteFrameAndSequence(t *testing.T) {
	dir := t.TempDir()
	snapshotOpts.width, snapshotOpts.height = 40, 30
	snapshotOpts.backdrop = "white"
	panels := composePanels(transition.Config{Variant: transition.VariantBlock})

	pngPath := filepath.Join(dir, "frame.png")
	require.NoError(t, writeFrame(panels, 0, pngPath))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())

	svgPath := filepath.Join(dir, "frame.svg")
	require.NoError(t, writeFrame(panels, 0, svgPath))
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<polygon")

	snapshotOpts.frames = 3
	snapshotOpts.out = filepath.Join(dir, "seq")
	defer func() { snapshotOpts.frames = 0 }()
	require.NoError(t, writeSequence(panels))
	entries, err := os.ReadDir(snapshotOpts.out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestNextPageWraps(t *testing.T) {
	assert.Equal(t, router.Route("/library"), nextPage("/home"))
	assert.Equal(t, router.Route("/home"), nextPage("/settings"))
	assert.Equal(t, router.Route("/home"), nextPage("/unknown"))
}

func TestNavigate(t *testing.T) {
	stack := router.NewStack()

	next, _ := navigate("/home", navNext, stack)
	assert.Equal(t, router.Route("/library"), next)
	next, _ = navigate("/library", navNext, stack)
	assert.Equal(t, router.Route("/settings"), next)
	assert.Equal(t, []router.Route{"/home", "/library"}, stack.Routes())

	back, _ := navigate("/settings", navBack, stack)
	assert.Equal(t, router.Route("/library"), back)

	home, _ := navigate("/library", navHome, stack)
	assert.Equal(t, router.Route("/home"), home)
	assert.True(t, stack.IsEmpty())

	exit, _ := navigate("/home", navBack, stack)
	assert.Equal(t, router.RouteExit, exit)

	exit, _ = navigate("/home", navQuit, stack)
	assert.Equal(t, router.RouteExit, exit)
}

func TestReloadMidTransitionBalancesCounters(t *testing.T) {
	collector, err := metrics.NewCollector(nil)
	require.NoError(t, err)

	d := &demo{
		stage:     curtain.NewStage(transition.Config{Variant: transition.VariantBlock}, curtain.WithObserver(collector)),
		collector: collector,
	}
	d.stage.Frame("/home", nil, 0)
	d.stage.Frame("/library", nil, 0)
	require.True(t, d.stage.Transitioning())

	d.reload(&config.File{Transition: transition.Config{Variant: transition.VariantBlinds}}, "/library")

	assert.False(t, d.stage.Transitioning())
	assert.Equal(t, transition.VariantBlinds, d.stage.Host().Config().Variant)
	started := testutil.ToFloat64(collector.Started.WithLabelValues("block"))
	ended := testutil.ToFloat64(collector.Completed.WithLabelValues("block")) +
		testutil.ToFloat64(collector.Abandoned.WithLabelValues("block"))
	assert.Equal(t, 1.0, started)
	assert.Equal(t, started, ended)
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.Active))
}
