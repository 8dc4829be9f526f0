package maps

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"NaviDemo-App/internal/domain/helper"
	"NaviDemo-App/internal/domain/model"
	"NaviDemo-App/internal/domain/provider"
)

// デモで使用する基準地点（バンガロール市中心部）
const (
	baseLatitude  = 12.9716
	baseLongitude = 77.5946
	baseAddress   = "Bangalore, Karnataka, India"
)

const (
	// searchOffsetDegrees 検索結果を origin からずらす最大オフセット（度）
	searchOffsetDegrees = 0.01
	// landmarkScatterRadius ランドマークを origin 周辺に散布する半径（度）
	landmarkScatterRadius = 0.02
	// searchResultCount フリーテキスト検索が常に返す件数
	searchResultCount = 3
)

// 操作ごとの擬似ネットワーク遅延
const (
	latencyCurrentLocation = 500 * time.Millisecond
	latencyTraffic         = 300 * time.Millisecond
	latencyLandmarks       = 700 * time.Millisecond
	latencySearch          = 800 * time.Millisecond
	latencyRoute           = 1000 * time.Millisecond
)

// trafficMessages 交通情報として返す固定メッセージ（3種からランダム選択）
var trafficMessages = []string{
	"Light traffic on your route",
	"Moderate traffic expected",
	"Heavy traffic ahead",
}

// SimulatedMapProvider 実際のAPIを呼ばずに擬似的な地図データを生成するプロバイダ
// ネットワーク遅延はタイマー待機で再現し、実I/Oは一切行わない
type SimulatedMapProvider struct {
	logger *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	latencyScale float64
	tickInterval time.Duration
	failLocation bool

	trackingMu sync.Mutex
	tracking   *trackingSession
}

// Option SimulatedMapProviderの構築オプション
type Option func(*SimulatedMapProvider)

// WithLatencyScale 擬似遅延の倍率を設定する（テストでは0を指定して即時応答にする）
func WithLatencyScale(scale float64) Option {
	return func(s *SimulatedMapProvider) {
		s.latencyScale = scale
	}
}

// WithTickInterval ライブトラッキングの配信間隔を設定する
func WithTickInterval(interval time.Duration) Option {
	return func(s *SimulatedMapProvider) {
		s.tickInterval = interval
	}
}

// WithRandSource 乱数シードを固定する（テストの再現性確保用）
func WithRandSource(src rand.Source) Option {
	return func(s *SimulatedMapProvider) {
		s.rng = rand.New(src)
	}
}

// WithLocationFailure 現在地取得を常に失敗させる（失敗系のテスト用）
func WithLocationFailure() Option {
	return func(s *SimulatedMapProvider) {
		s.failLocation = true
	}
}

// NewSimulatedMapProvider 新しいシミュレータープロバイダを生成する
func NewSimulatedMapProvider(logger *zap.Logger, opts ...Option) *SimulatedMapProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SimulatedMapProvider{
		logger:       logger,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		latencyScale: 1.0,
		tickInterval: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCurrentLocation 基準地点を現在地として返す
func (s *SimulatedMapProvider) GetCurrentLocation(ctx context.Context) (*model.LocationData, error) {
	if err := s.delay(ctx, latencyCurrentLocation); err != nil {
		return nil, err
	}
	if s.failLocation {
		return nil, provider.ErrLocationUnavailable
	}
	return &model.LocationData{
		Latitude:  baseLatitude,
		Longitude: baseLongitude,
		Address:   baseAddress,
	}, nil
}

// SearchPlaces クエリ名を含む3件のスポットを origin 周辺に生成する
func (s *SimulatedMapProvider) SearchPlaces(ctx context.Context, query string, origin *model.LocationData) ([]*model.PlaceData, error) {
	if err := s.delay(ctx, latencySearch); err != nil {
		return nil, err
	}

	// 検索結果の構造は決定的（件数・名称パターン）で、評価値などだけランダム
	nameTemplates := []string{"The %s Spot", "%s Corner", "%s Central"}
	descTemplates := []string{
		"Popular destination for %s",
		"Well-reviewed place for %s nearby",
		"Local favorite for %s",
	}

	places := make([]*model.PlaceData, 0, searchResultCount)
	for i := 0; i < searchResultCount; i++ {
		location := helper.OffsetLocation(s.derivedRand(), origin, searchOffsetDegrees)
		place := &model.PlaceData{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf(nameTemplates[i], query),
			Category:    "place",
			Location:    location,
			IsOpen:      s.randFloat() < 0.75,
			PriceLevel:  1 + s.randIntn(4),
			Phone:       s.randPhone(),
			Hours:       "9:00 AM - 10:00 PM",
			Description: fmt.Sprintf(descTemplates[i], query),
		}
		place.SetRating(s.randRating())
		places = append(places, place)
	}
	return places, nil
}

// GetLandmarksByCategory カテゴリ別の名称プールから origin 周辺のランドマークを生成する
func (s *SimulatedMapProvider) GetLandmarksByCategory(ctx context.Context, category model.LandmarkCategory, origin *model.LocationData) ([]*model.PlaceData, error) {
	if err := s.delay(ctx, latencyLandmarks); err != nil {
		return nil, err
	}

	pool := namePoolFor(category)
	amenities := amenitiesFor(category)

	landmarks := make([]*model.PlaceData, 0, len(pool))
	for _, name := range pool {
		location := helper.ScatterWithinRadius(s.derivedRand(), origin, landmarkScatterRadius)
		landmark := &model.PlaceData{
			ID:          uuid.New().String(),
			Name:        name,
			Category:    string(category),
			Location:    location,
			IsOpen:      s.randFloat() < 0.8,
			PriceLevel:  1 + s.randIntn(3),
			Phone:       s.randPhone(),
			Hours:       "Open 24 hours",
			Description: fmt.Sprintf("%s near your location", name),
			Amenities:   s.amenitySubset(amenities),
		}
		landmark.SetRating(s.randRating())
		landmarks = append(landmarks, landmark)
	}
	return landmarks, nil
}

// GetRoute 固定の3ステップ経路を生成する。渋滞レベルは light / moderate の50/50
func (s *SimulatedMapProvider) GetRoute(ctx context.Context, start, end *model.LocationData) (*model.RouteData, error) {
	if err := s.delay(ctx, latencyRoute); err != nil {
		return nil, err
	}

	trafficLevel := model.TrafficLight
	if s.randFloat() < 0.5 {
		trafficLevel = model.TrafficModerate
	}

	return &model.RouteData{
		Start: *start,
		End:   *end,
		Polyline: fmt.Sprintf("sim:%.4f,%.4f;%.4f,%.4f",
			start.Latitude, start.Longitude, end.Latitude, end.Longitude),
		Distance:     "5.2 km",
		Duration:     "15 mins",
		TrafficLevel: trafficLevel,
		Steps: []model.RouteStep{
			{
				Instruction: "Head north on MG Road",
				Distance:    "1.2 km",
				Duration:    "4 mins",
				Maneuver:    "straight",
			},
			{
				Instruction: "Turn right onto Brigade Road",
				Distance:    "2.5 km",
				Duration:    "7 mins",
				Maneuver:    "turn-right",
			},
			{
				Instruction: "Turn left to reach your destination",
				Distance:    "1.5 km",
				Duration:    "4 mins",
				Maneuver:    "turn-left",
			},
		},
	}, nil
}

// GetTrafficData 3種の固定メッセージから1つをランダムに返す
func (s *SimulatedMapProvider) GetTrafficData(ctx context.Context, location *model.LocationData) (string, error) {
	if err := s.delay(ctx, latencyTraffic); err != nil {
		return "", err
	}
	return trafficMessages[s.randIntn(len(trafficMessages))], nil
}

// delay 擬似的なネットワーク遅延を再現する。ctxのキャンセルで中断できる
func (s *SimulatedMapProvider) delay(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.latencyScale)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// amenitySubset 候補から1件以上のランダムな部分集合を選ぶ
func (s *SimulatedMapProvider) amenitySubset(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	count := 1 + s.randIntn(len(candidates))
	picked := make([]string, 0, count)
	s.rngMu.Lock()
	indices := s.rng.Perm(len(candidates))
	s.rngMu.Unlock()
	for _, idx := range indices[:count] {
		picked = append(picked, candidates[idx])
	}
	return picked
}

// randRating 評価値を [3.5, 5.0] の範囲で生成する
func (s *SimulatedMapProvider) randRating() float64 {
	return 3.5 + s.randFloat()*1.5
}

// randPhone バンガロールの市外局番に合わせた電話番号を生成する
func (s *SimulatedMapProvider) randPhone() string {
	return fmt.Sprintf("+91 80 %04d %04d", s.randIntn(10000), s.randIntn(10000))
}

// 乱数器は複数goroutine（リクエスト処理とライブトラッキング）から共有されるため、
// 以下のヘルパーでロックを取って使用する

func (s *SimulatedMapProvider) randFloat() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func (s *SimulatedMapProvider) randIntn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// derivedRand ヘルパー関数へ渡す専用のrandを共有シードから派生させる
// （共有rngをロックなしでヘルパーへ渡さないため）
func (s *SimulatedMapProvider) derivedRand() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}
