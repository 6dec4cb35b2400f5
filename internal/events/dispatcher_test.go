package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []EventType
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	id := int64(4)
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventUserRegistered, &id, "alice@example.com", nil)))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventUserLoggedIn, &id, "alice@example.com", nil)))

	assert.Equal(t, []EventType{EventUserRegistered}, got)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("smtp down")
	calls := 0
	d.Subscribe(EventUserLoginFailed, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventUserLoginFailed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventUserLoginFailed, nil, "ghost@example.com", LoginFailedPayload{Reason: "unknown"}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDispatcherConcurrentUse(t *testing.T) {
	d := NewInMemoryDispatcher()
	var mu sync.Mutex
	count := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Subscribe(EventUserLoggedIn, func(context.Context, Event) error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = d.Publish(context.Background(), NewEvent(EventUserLoggedIn, nil, "", nil))
		}()
	}
	wg.Wait()

	count = 0
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventUserLoggedIn, nil, "", nil)))
	assert.Equal(t, 20, count)
}

func TestNewEventStampsIDAndTime(t *testing.T) {
	a := NewEvent(EventUserRegistered, nil, "a@example.com", nil)
	b := NewEvent(EventUserRegistered, nil, "a@example.com", nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}
