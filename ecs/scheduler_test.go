package ecs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerOnceRunsSystemsAndFlushesCommands(t *testing.T) {
	r := NewRegistry()
	counter := r.Component(8)

	e := r.Entity()
	r.Attach(e, counter)
	r.Set(e, counter, []byte{0, 0, 0, 0, 0, 0, 0, 0})

	sched := NewScheduler(r)

	var ticks, flushed int
	sig := NewSignature(counter.entity())
	r.System(sig, func(v View, row int) {
		ticks++
		sched.Commands().Defer(func() {
			// deferred work queued from inside a system callback must not
			// run until after Step has finished the whole sweep
			flushed++
		})
	})

	sched.Once()
	assert.Equal(t, 1, ticks)
	assert.Equal(t, 1, flushed)

	sched.Once()
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 2, flushed)
}

func TestSchedulerRunStopsOnContextCancel(t *testing.T) {
	r := NewRegistry()
	sched := NewScheduler(r)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sched.Run(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
