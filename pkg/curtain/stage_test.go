package curtain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

type recordingObserver struct {
	mu        sync.Mutex
	started   []transition.Route
	completed []time.Duration
}

func (o *recordingObserver) TransitionStarted(_ transition.Variant, route transition.Route) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = append(o.started, route)
}

func (o *recordingObserver) TransitionCompleted(_ transition.Variant, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed = append(o.completed, elapsed)
}

const frame = 50 * time.Millisecond

func TestStagePlaysTransitionToCompletion(t *testing.T) {
	obs := &recordingObserver{}
	s := NewStage(transition.Config{Variant: transition.VariantMultiBlock}, WithObserver(obs))

	scene := s.Frame("/a", "home", frame)
	assert.Equal(t, "home", scene.Children)
	assert.Empty(t, scene.Samples)
	assert.False(t, s.Transitioning())

	scene = s.Frame("/b", "library", frame)
	require.Len(t, scene.Samples, 4)
	assert.Equal(t, "library", scene.Children)
	assert.Equal(t, 50, scene.StackOrder)
	assert.Zero(t, scene.Samples[0].Progress)
	assert.True(t, s.Transitioning())
	assert.Equal(t, []transition.Route{"/b"}, obs.started)

	// 750ms + 300ms stagger = 21 frames of 50ms
	frames := 0
	for s.Transitioning() {
		scene = s.Frame("/b", "library", frame)
		frames++
		require.Less(t, frames, 100)
	}

	assert.Equal(t, 21, frames)
	assert.Empty(t, scene.Samples)
	assert.Equal(t, transition.StateIdle, s.Host().State())
	require.Len(t, obs.completed, 1)
	assert.Equal(t, 1050*time.Millisecond, obs.completed[0])
	assert.EqualValues(t, 1, s.Started())
}

func TestStageIgnoresRouteChangeMidTransition(t *testing.T) {
	obs := &recordingObserver{}
	s := NewStage(transition.Config{Variant: transition.VariantBlock}, WithObserver(obs))
	s.Frame("/a", nil, frame)
	s.Frame("/b", nil, frame)

	for i := 0; i < 5; i++ {
		s.Frame("/b", nil, frame)
	}
	before := s.Frame("/c", nil, frame)
	require.Len(t, before.Samples, 2)

	frames := 0
	for s.Transitioning() {
		s.Frame("/c", nil, frame)
		frames++
		require.Less(t, frames, 100)
	}

	// The in-flight animation finishes on its original schedule.
	assert.Equal(t, 9, frames)
	assert.Len(t, obs.started, 1)
	assert.Len(t, obs.completed, 1)

	// Settled on /c: no new transition.
	s.Frame("/c", nil, frame)
	assert.False(t, s.Transitioning())
	assert.EqualValues(t, 1, s.Started())
}

func TestStageUnknownVariantSettles(t *testing.T) {
	s := NewStage(transition.Config{Variant: "wipe"})
	s.Frame("/a", nil, frame)

	scene := s.Frame("/b", nil, frame)
	assert.Empty(t, scene.Samples)
	assert.False(t, s.Transitioning())
	assert.EqualValues(t, 1, s.Started())
}

func TestStageStatusIsSafeToReadConcurrently(t *testing.T) {
	s := NewStage(transition.Config{})
	s.Frame("/a", nil, frame)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = s.Transitioning()
				_ = s.Started()
			}
		}
	}()

	for i := 0; i < 50; i++ {
		route := transition.Route("/a")
		if i%10 == 0 {
			route = transition.Route("/b")
		}
		s.Frame(route, nil, frame)
	}
	close(stop)
	wg.Wait()
}
