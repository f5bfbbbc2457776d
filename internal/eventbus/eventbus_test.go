package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventUserAdded, func(e DomainEvent) { got <- e })

	b.Publish(UserAddedEvent{})

	select {
	case e := <-got:
		assert.Equal(t, EventUserAdded, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestHandlersOnlyReceiveTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var wrong atomic.Int32
	done := make(chan struct{}, 1)
	b.Subscribe(EventThemeChanged, func(DomainEvent) { wrong.Add(1) })
	b.Subscribe(EventLoggedIn, func(DomainEvent) { done <- struct{}{} })

	b.Publish(LoggedInEvent{Username: "ana"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Zero(t, wrong.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventGratitudeAdded, func(DomainEvent) { calls.Add(1) })
	keep := make(chan struct{}, 1)
	b.Subscribe(EventGratitudeAdded, func(DomainEvent) { keep <- struct{}{} })

	unsubscribe()
	b.Publish(GratitudeAddedEvent{Text: "sun"})

	select {
	case <-keep:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// Give a stray delivery a moment to show up
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestHandlerPanicDoesNotKillBus(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("second handler was not called")
	}

	b.Publish(ErrorEvent{Message: "y"})
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(LoggedOutEvent{Username: "ana"})
		b.Close()
	})
}

func TestCloseWaitsForRunningHandlers(t *testing.T) {
	b := New()

	started := make(chan struct{})
	var done atomic.Bool
	b.Subscribe(EventError, func(DomainEvent) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	})

	b.Publish(ErrorEvent{Message: "boom"})
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}

	b.Close()
	assert.True(t, done.Load(), "Close returned while a handler was still running")
}
