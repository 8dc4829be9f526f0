package view

import (
	"sync"

	"go.uber.org/zap"

	"NaviDemo-App/internal/domain/model"
)

// subscriberBuffer 購読者ごとのイベントバッファ長
// バッファが溢れた場合は新しいイベントを破棄する（遅い購読者で全体を止めない）
const subscriberBuffer = 16

// Event View層へ配信する1件のイベント
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// SSEView MapViewの実装。Presenterからのコールバックを型付きJSONイベントに
// 変換し、SSEで購読しているクライアント全員へファンアウトする
type SSEView struct {
	logger *zap.Logger

	mu          sync.Mutex
	subscribers map[chan Event]struct{}
}

// NewSSEView 新しいSSEViewインスタンスを作成する
func NewSSEView(logger *zap.Logger) *SSEView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SSEView{
		logger:      logger,
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe イベント購読を開始する。戻り値のcancelで購読を解除する
func (v *SSEView) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	v.mu.Lock()
	v.subscribers[ch] = struct{}{}
	v.mu.Unlock()

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if _, ok := v.subscribers[ch]; ok {
			delete(v.subscribers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// broadcast 全購読者へイベントを配信する
func (v *SSEView) broadcast(eventType string, payload interface{}) {
	event := Event{Type: eventType, Payload: payload}

	v.mu.Lock()
	defer v.mu.Unlock()
	for ch := range v.subscribers {
		select {
		case ch <- event:
		default:
			v.logger.Warn("購読者のバッファが満杯のためイベントを破棄",
				zap.String("type", eventType))
		}
	}
}

func (v *SSEView) ShowLocation(location *model.LocationData) {
	v.broadcast("location", location)
}

func (v *SSEView) ShowPlaces(places []*model.PlaceData) {
	v.broadcast("places", places)
}

func (v *SSEView) ShowLandmarks(landmarks []*model.PlaceData) {
	v.broadcast("landmarks", landmarks)
}

func (v *SSEView) ShowRoute(route *model.RouteData) {
	v.broadcast("route", route)
}

func (v *SSEView) ShowLoading(isLoading bool) {
	v.broadcast("loading", isLoading)
}

func (v *SSEView) ShowError(message string) {
	v.broadcast("error", message)
}

func (v *SSEView) UpdateTrafficInfo(info string) {
	v.broadcast("traffic", info)
}

func (v *SSEView) UpdateLiveLocation(location *model.LocationData) {
	v.broadcast("live_location", location)
}

func (v *SSEView) ShowNavigationStarted() {
	v.broadcast("navigation_started", nil)
}

func (v *SSEView) ShowNavigationStopped() {
	v.broadcast("navigation_stopped", nil)
}
