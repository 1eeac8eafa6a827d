package litho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCoalescesBurstOfSettersIntoOneNotification(t *testing.T) {
	scheduler := &ManualScheduler{}
	store := NewStore(scheduler)

	calls := 0
	var lastState State
	store.Subscribe(func(s State) {
		calls++
		lastState = s
	})

	require.NoError(t, store.SetParam("na", 0.8))
	require.NoError(t, store.SetParam("sigma", 0.4))
	require.NoError(t, store.SetZernikeCoeff("z7", 0.02))

	assert.Equal(t, 0, calls, "no notification before the scheduler ticks")

	scheduler.Advance()

	assert.Equal(t, 1, calls, "exactly one notification per coalescing window")
	assert.Equal(t, 0.8, lastState.Params.NA)
	assert.Equal(t, 0.4, lastState.Params.Sigma)
	assert.Equal(t, 0.02, lastState.Params.Zernike.Z7)
}

func TestStoreSecondBurstSchedulesAgainAfterTick(t *testing.T) {
	scheduler := &ManualScheduler{}
	store := NewStore(scheduler)

	calls := 0
	store.Subscribe(func(State) { calls++ })

	require.NoError(t, store.SetParam("na", 0.8))
	scheduler.Advance()
	assert.Equal(t, 1, calls)

	require.NoError(t, store.SetParam("na", 0.9))
	assert.Equal(t, 1, calls, "still coalescing until the next tick")
	scheduler.Advance()
	assert.Equal(t, 2, calls)
}

func TestStoreNotifyNowIsSynchronous(t *testing.T) {
	scheduler := &ManualScheduler{}
	store := NewStore(scheduler)

	calls := 0
	store.Subscribe(func(State) { calls++ })

	store.NotifyNow()
	assert.Equal(t, 1, calls)
}

func TestStoreUnknownKeysReturnErrors(t *testing.T) {
	store := NewStore(&ManualScheduler{})
	assert.Error(t, store.SetParam("bogus", 1))
	assert.Error(t, store.SetZernikeCoeff("bogus", 1))
	assert.Error(t, store.SetViewParam("bogus", 1))
}

func TestStoreResetParamsRestoresDefaults(t *testing.T) {
	scheduler := &ManualScheduler{}
	store := NewStore(scheduler)

	require.NoError(t, store.SetParam("na", 0.1))
	store.ResetParams()
	scheduler.Advance()

	assert.Equal(t, DefaultPupilParams(), store.GetState().Params)
}

func TestStoreReentrantSetterDuringNotificationQueuesNextTick(t *testing.T) {
	scheduler := &ManualScheduler{}
	store := NewStore(scheduler)

	calls := 0
	store.Subscribe(func(s State) {
		calls++
		if calls == 1 {
			_ = store.SetParam("na", 0.77)
		}
	})

	require.NoError(t, store.SetParam("na", 0.5))
	scheduler.Advance()
	assert.Equal(t, 1, calls)

	scheduler.Advance()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0.77, store.GetState().Params.NA)
}
