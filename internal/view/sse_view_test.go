package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NaviDemo-App/internal/domain/model"
)

func TestSSEView_BroadcastsToSubscribers(t *testing.T) {
	v := NewSSEView(nil)

	ch, cancel := v.Subscribe()
	defer cancel()

	location := &model.LocationData{Latitude: 12.9716, Longitude: 77.5946}
	v.ShowLocation(location)
	v.ShowLoading(true)

	event := <-ch
	assert.Equal(t, "location", event.Type)
	assert.Equal(t, location, event.Payload)

	event = <-ch
	assert.Equal(t, "loading", event.Type)
	assert.Equal(t, true, event.Payload)
}

func TestSSEView_CancelStopsDelivery(t *testing.T) {
	v := NewSSEView(nil)

	ch, cancel := v.Subscribe()
	cancel()

	// 解除後のブロードキャストはパニックせず、チャンネルは閉じられている
	v.ShowError("boom")
	_, ok := <-ch
	assert.False(t, ok)

	// cancelの二重呼び出しも安全
	cancel()
}

func TestSSEView_SlowSubscriberDoesNotBlock(t *testing.T) {
	v := NewSSEView(nil)

	ch, cancel := v.Subscribe()
	defer cancel()

	// バッファを超えて送ってもブロックしない（溢れた分は破棄される）
	for i := 0; i < subscriberBuffer*2; i++ {
		v.UpdateTrafficInfo("info")
	}

	received := 0
	for len(ch) > 0 {
		<-ch
		received++
	}
	require.Equal(t, subscriberBuffer, received)
}

func TestSSEView_MultipleSubscribers(t *testing.T) {
	v := NewSSEView(nil)

	ch1, cancel1 := v.Subscribe()
	ch2, cancel2 := v.Subscribe()
	defer cancel1()
	defer cancel2()

	v.ShowNavigationStarted()

	event1 := <-ch1
	event2 := <-ch2
	assert.Equal(t, "navigation_started", event1.Type)
	assert.Equal(t, "navigation_started", event2.Type)
}
