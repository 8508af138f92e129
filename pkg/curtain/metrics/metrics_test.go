package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var (
	_ curtain.Observer        = (*Collector)(nil)
	_ curtain.AbandonObserver = (*Collector)(nil)
)

func TestCollectorRecordsStageTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	stage := curtain.NewStage(transition.Config{Variant: transition.VariantBlock}, curtain.WithObserver(c))
	stage.Frame("/a", nil, 0)
	stage.Frame("/b", nil, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Started.WithLabelValues("block")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Active))

	for i := 0; stage.Transitioning() && i < 100; i++ {
		stage.Frame("/b", nil, 250*time.Millisecond)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Completed.WithLabelValues("block")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Active))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Duration, "curtain_transition_duration_seconds"))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"curtain_transitions_started_total",
		"curtain_transitions_completed_total",
		"curtain_transition_duration_seconds",
		"curtain_transition_active",
	}, names)
}

func TestNewCollectorRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestNewCollectorWithoutRegistry(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)

	c.TransitionStarted(transition.VariantFade, "/x")
	c.TransitionCompleted(transition.VariantFade, 750*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Completed.WithLabelValues("fade")))
}

func TestAbandonedTransitionKeepsCountersBalanced(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	stage := curtain.NewStage(transition.Config{Variant: transition.VariantBlinds}, curtain.WithObserver(c))
	stage.Frame("/a", nil, 0)
	stage.Frame("/b", nil, 0)
	stage.Frame("/b", nil, 100*time.Millisecond)
	require.True(t, stage.Transitioning())

	stage.Abandon()
	stage.Abandon()

	assert.False(t, stage.Transitioning())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Started.WithLabelValues("blinds")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Abandoned.WithLabelValues("blinds")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Completed.WithLabelValues("blinds")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Active))

	for i := 0; i < 20; i++ {
		stage.Frame("/b", nil, 250*time.Millisecond)
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Completed.WithLabelValues("blinds")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Abandoned, "curtain_transitions_abandoned_total"))
}
