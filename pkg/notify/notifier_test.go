package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

func TestNotifier_AppearsImmediately(t *testing.T) {
	t.Parallel()
	n := notify.New(nil, time.Minute)
	t.Cleanup(n.Dispose)

	n.Success("template created successfully")

	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelSuccess, active[0].Level)
	assert.Equal(t, "template created successfully", active[0].Message)
}

func TestNotifier_AutoDismissesAfterTTL(t *testing.T) {
	t.Parallel()
	n := notify.New(nil, 15*time.Millisecond)
	t.Cleanup(n.Dispose)

	n.Info("saving…")

	require.Len(t, n.Active(), 1)
	assert.Eventually(t, func() bool {
		return len(n.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_OverlappingNoticesStack(t *testing.T) {
	t.Parallel()
	n := notify.New(nil, time.Minute)
	t.Cleanup(n.Dispose)

	n.Success("first")
	n.Error("second")

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, "second", active[1].Message, "most recent last")
}

func TestNotifier_DisposeCancelsTimersAndDropsLater(t *testing.T) {
	t.Parallel()
	n := notify.New(nil, 10*time.Millisecond)

	n.Success("will be cancelled")
	n.Dispose()

	assert.Empty(t, n.Active())

	// Post-dispose notifications are dropped, not queued.
	n.Success("after dispose")
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, n.Active())
}
