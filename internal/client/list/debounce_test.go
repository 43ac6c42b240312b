package list

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type debounceRecorder struct {
	mu     sync.Mutex
	values []string
}

func (r *debounceRecorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *debounceRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.values...)
}

func TestDebouncerDeliversOnlyLastValue(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("p")
	d.Trigger("pi")
	d.Trigger("pikachu")

	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"pikachu"}, rec.snapshot())
}

func TestDebouncerRestartsWindowOnEachTrigger(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("a")
	time.Sleep(30 * time.Millisecond)
	d.Trigger("ab")
	time.Sleep(30 * time.Millisecond)

	// 60ms elapsed but never 50ms of quiet, so nothing fired yet.
	assert.Empty(t, rec.snapshot())

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"ab"}, rec.snapshot())
}

func TestDebouncerStopCancelsPendingCallback(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// Triggering after Stop is inert.
	d.Trigger("also doomed")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
