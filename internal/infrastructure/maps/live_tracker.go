package maps

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"NaviDemo-App/internal/domain/helper"
	"NaviDemo-App/internal/domain/model"
	"NaviDemo-App/internal/domain/provider"
)

// trackingSession 1つのライブトラッキングセッションを表すキャンセル可能なハンドル
// activeフラグは配信時点でチェックされるため、stop()が返った後に
// コールバックが呼ばれることはない（進行中のティックも含む）
type trackingSession struct {
	callback provider.LocationCallback
	stopCh   chan struct{}

	mu     sync.Mutex
	active bool
}

// deliver activeな場合のみコールバックを呼ぶ
func (t *trackingSession) deliver(location *model.LocationData) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	t.callback(location)
}

// stop セッションを停止する。以降の配信は行われない
func (t *trackingSession) stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	t.mu.Unlock()
	close(t.stopCh)
}

// StartLiveTracking 位置情報の定期配信を開始する
// すでにセッションがある場合は停止してから新しいセッションに置き換える
func (s *SimulatedMapProvider) StartLiveTracking(callback provider.LocationCallback) {
	s.trackingMu.Lock()
	defer s.trackingMu.Unlock()

	if s.tracking != nil {
		s.tracking.stop()
	}

	session := &trackingSession{
		callback: callback,
		stopCh:   make(chan struct{}),
		active:   true,
	}
	s.tracking = session

	s.logger.Debug("ライブトラッキング開始", zap.Duration("interval", s.tickInterval))
	go s.runTracking(session)
}

// StopLiveTracking 位置情報の定期配信を停止する
func (s *SimulatedMapProvider) StopLiveTracking() {
	s.trackingMu.Lock()
	defer s.trackingMu.Unlock()

	if s.tracking == nil {
		return
	}
	s.tracking.stop()
	s.tracking = nil
	s.logger.Debug("ライブトラッキング停止")
}

// runTracking ティックごとにジッターを加えた位置を配信するループ
func (s *SimulatedMapProvider) runTracking(session *trackingSession) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	heading := s.randFloat() * 360

	for {
		select {
		case <-session.stopCh:
			return
		case <-ticker.C:
			session.deliver(s.nextLiveLocation(&heading))
		}
	}
}

// nextLiveLocation 基準地点に移動・方位・速度のジッターを加えた位置を生成する
func (s *SimulatedMapProvider) nextLiveLocation(heading *float64) *model.LocationData {
	*heading = helper.WrapHeading(*heading + (s.randFloat()-0.5)*30)

	speed := 20 + s.randFloat()*40
	accuracy := 5 + s.randFloat()*10
	h := *heading

	return &model.LocationData{
		Latitude:  baseLatitude + (s.randFloat()-0.5)*0.002,
		Longitude: baseLongitude + (s.randFloat()-0.5)*0.002,
		Address:   baseAddress,
		Heading:   &h,
		Speed:     &speed,
		Accuracy:  &accuracy,
	}
}
