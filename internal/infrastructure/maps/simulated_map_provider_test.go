package maps

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NaviDemo-App/internal/domain/helper"
	"NaviDemo-App/internal/domain/model"
	"NaviDemo-App/internal/domain/provider"
)

// newTestProvider 遅延なし・シード固定のシミュレーターを作成する
func newTestProvider(opts ...Option) *SimulatedMapProvider {
	base := []Option{
		WithLatencyScale(0),
		WithRandSource(rand.NewSource(1)),
	}
	return NewSimulatedMapProvider(nil, append(base, opts...)...)
}

func testOrigin() *model.LocationData {
	return &model.LocationData{
		Latitude:  baseLatitude,
		Longitude: baseLongitude,
		Address:   baseAddress,
	}
}

func TestGetCurrentLocation_ReturnsReferencePoint(t *testing.T) {
	p := newTestProvider()

	location, err := p.GetCurrentLocation(context.Background())
	require.NoError(t, err)
	require.NotNil(t, location)

	assert.InDelta(t, 12.9716, location.Latitude, 1e-9)
	assert.InDelta(t, 77.5946, location.Longitude, 1e-9)
	assert.Equal(t, "Bangalore, Karnataka, India", location.Address)
}

func TestGetCurrentLocation_Failure(t *testing.T) {
	p := newTestProvider(WithLocationFailure())

	_, err := p.GetCurrentLocation(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrLocationUnavailable)
}

func TestGetCurrentLocation_ContextCancel(t *testing.T) {
	// 遅延ありのプロバイダでキャンセルが効くことを確認する
	p := NewSimulatedMapProvider(nil, WithLatencyScale(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetCurrentLocation(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchPlaces_ReturnsThreeResultsNearOrigin(t *testing.T) {
	p := newTestProvider()
	origin := testOrigin()

	places, err := p.SearchPlaces(context.Background(), "coffee", origin)
	require.NoError(t, err)
	require.Len(t, places, 3)

	for _, place := range places {
		assert.Contains(t, place.Name, "coffee")
		assert.NotEmpty(t, place.ID)
		assert.InDelta(t, origin.Latitude, place.Location.Latitude, searchOffsetDegrees+1e-9)
		assert.InDelta(t, origin.Longitude, place.Location.Longitude, searchOffsetDegrees+1e-9)

		require.True(t, place.HasRating())
		assert.GreaterOrEqual(t, place.GetRating(), 3.5)
		assert.LessOrEqual(t, place.GetRating(), 5.0)
		assert.GreaterOrEqual(t, place.PriceLevel, 1)
		assert.LessOrEqual(t, place.PriceLevel, 4)
	}
}

func TestGetLandmarksByCategory_MatchesCategoryAndRadius(t *testing.T) {
	p := newTestProvider()
	origin := testOrigin()

	for _, category := range model.AllLandmarkCategories() {
		landmarks, err := p.GetLandmarksByCategory(context.Background(), category, origin)
		require.NoError(t, err)
		require.NotEmpty(t, landmarks, "カテゴリ %s の結果が空", category)

		for _, landmark := range landmarks {
			assert.Equal(t, string(category), landmark.Category)
			assert.LessOrEqual(t,
				helper.DegreeDelta(origin, &landmark.Location),
				landmarkScatterRadius+1e-9)
			assert.NotEmpty(t, landmark.Amenities)
			assert.Subset(t, amenitiesFor(category), landmark.Amenities)
		}
	}
}

func TestNamePoolFor_FallsBackToRestaurants(t *testing.T) {
	pool := namePoolFor(model.LandmarkCategory("unmapped_category"))
	assert.Equal(t, landmarkNamePools[model.CategoryRestaurant], pool)
}

func TestGetRoute_FixedItinerary(t *testing.T) {
	p := newTestProvider()
	start := testOrigin()
	end := &model.LocationData{Latitude: 12.9352, Longitude: 77.6245, Address: "Koramangala"}

	route, err := p.GetRoute(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, *start, route.Start)
	assert.Equal(t, *end, route.End)
	assert.Equal(t, "5.2 km", route.Distance)
	assert.Equal(t, "15 mins", route.Duration)
	assert.NotEmpty(t, route.Polyline)
	require.Len(t, route.Steps, 3)
	assert.True(t, route.TrafficLevel.IsValid())
	// 生成される渋滞レベルは light / moderate のいずれか
	assert.Contains(t, []model.TrafficLevel{model.TrafficLight, model.TrafficModerate}, route.TrafficLevel)
}

func TestGetTrafficData_ReturnsFixedMessage(t *testing.T) {
	p := newTestProvider()

	for i := 0; i < 20; i++ {
		info, err := p.GetTrafficData(context.Background(), testOrigin())
		require.NoError(t, err)
		assert.Contains(t, trafficMessages, info)
	}
}

func TestLiveTracking_DeliversJitteredLocations(t *testing.T) {
	p := newTestProvider(WithTickInterval(5 * time.Millisecond))

	received := make(chan *model.LocationData, 16)
	p.StartLiveTracking(func(location *model.LocationData) {
		received <- location
	})
	defer p.StopLiveTracking()

	select {
	case location := <-received:
		require.NotNil(t, location)
		assert.True(t, location.HasGPSMetadata())
		assert.InDelta(t, baseLatitude, location.Latitude, 0.01)
		assert.InDelta(t, baseLongitude, location.Longitude, 0.01)
		require.NotNil(t, location.Heading)
		assert.GreaterOrEqual(t, *location.Heading, 0.0)
		assert.Less(t, *location.Heading, 360.0)
	case <-time.After(time.Second):
		t.Fatal("ティックが届きませんでした")
	}
}

func TestLiveTracking_NoDeliveryAfterStop(t *testing.T) {
	p := newTestProvider(WithTickInterval(5 * time.Millisecond))

	var count atomic.Int64
	p.StartLiveTracking(func(location *model.LocationData) {
		count.Add(1)
	})

	// 最低1回の配信を待ってから停止する
	require.Eventually(t, func() bool {
		return count.Load() >= 1
	}, time.Second, time.Millisecond)

	p.StopLiveTracking()
	after := count.Load()

	// 停止後はティックが進行中だったとしても配信されない
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, count.Load())
}

func TestLiveTracking_RestartReplacesSession(t *testing.T) {
	p := newTestProvider(WithTickInterval(5 * time.Millisecond))

	var first, second atomic.Int64
	p.StartLiveTracking(func(location *model.LocationData) {
		first.Add(1)
	})

	// 2回目の開始で1つ目のセッションは置き換えられる
	p.StartLiveTracking(func(location *model.LocationData) {
		second.Add(1)
	})
	firstCount := first.Load()

	require.Eventually(t, func() bool {
		return second.Load() >= 2
	}, time.Second, time.Millisecond)

	// 置き換え後、1つ目のコールバックは増えない
	assert.LessOrEqual(t, first.Load(), firstCount+1)
	p.StopLiveTracking()
}
