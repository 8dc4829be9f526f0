package presenter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"NaviDemo-App/internal/domain/model"
	"NaviDemo-App/internal/domain/provider"
	"NaviDemo-App/internal/domain/view"
)

// Viewへ表示する操作別の固定エラーメッセージ
// 内部エラーの詳細はUIへ出さず、この文言だけを表示する
const (
	msgLoadLocationFailed = "Failed to load location"
	msgSearchFailed       = "Search failed"
	msgDirectionsFailed   = "Failed to get directions"
	msgNavigationFailed   = "Failed to start navigation"
	msgLandmarksFailed    = "Failed to load landmarks"
)

// 前提条件が満たされていない場合に返すエラー
// この場合Viewへは何も表示されない（クラッシュもさせない）が、
// 呼び出し側からは結果が観測できる
var (
	ErrViewNotAttached = errors.New("viewがアタッチされていません")
	ErrLocationUnknown = errors.New("現在地が未取得です")
)

// NavigationStatus ナビゲーション状態のスナップショット
type NavigationStatus struct {
	IsNavigating bool             `json:"is_navigating"`
	CurrentRoute *model.RouteData `json:"current_route,omitempty"`
}

// MapPresenter ModelとViewを仲介するコーディネーション層のインターフェース
// UIマークアップやネットワークアクセスは一切持たず、Modelの呼び出し順序と
// 最小限のセッション状態（現在地・経路・ナビ中フラグ）だけを管理する
type MapPresenter interface {
	// AttachView Viewを紐づける。再呼び出しは置き換えになる
	AttachView(v view.MapView)

	// InitializeMap 現在地と交通情報を取得してViewへ反映する
	InitializeMap(ctx context.Context) error

	// HandleSearch 現在地周辺のスポットを検索してViewへ反映する
	HandleSearch(ctx context.Context, query string) error

	// HandleGetDirections 現在地から目的地までの経路を取得してViewへ反映する
	HandleGetDirections(ctx context.Context, destination *model.LocationData) error

	// StartNavigation 経路取得に加えてナビゲーションとライブトラッキングを開始する
	StartNavigation(ctx context.Context, destination *model.LocationData) error

	// HandleLocationUpdate 現在地を無条件に上書きし、交通情報をベストエフォートで更新する
	HandleLocationUpdate(ctx context.Context, newLocation *model.LocationData)

	// HandleLandmarkSearch カテゴリ指定でランドマークを検索してViewへ反映する
	HandleLandmarkSearch(ctx context.Context, category model.LandmarkCategory) error

	// StopNavigation ナビゲーションを終了する。前提条件なしで常に安全に呼べる
	StopNavigation()

	// StartLiveTracking 位置情報の定期配信を開始する
	StartLiveTracking()

	// StopLiveTracking 位置情報の定期配信を停止する
	StopLiveTracking()

	// NavigationStatus 現在のナビゲーション状態を取得する（副作用なし）
	NavigationStatus() NavigationStatus
}

// mapPresenterImpl MapPresenterの実装
type mapPresenterImpl struct {
	dataProvider provider.MapDataProvider
	logger       *zap.Logger

	mu              sync.Mutex
	view            view.MapView
	currentLocation *model.LocationData
	currentRoute    *model.RouteData
	isNavigating    bool

	// 世代カウンタ。並行して発行されたハンドラのうち、後から発行された
	// リクエストの結果を優先し、古いレスポンスによる上書きを防ぐ
	issuedGen  uint64
	appliedGen uint64
}

// NewMapPresenter 新しいMapPresenterインスタンスを作成する
func NewMapPresenter(dataProvider provider.MapDataProvider, logger *zap.Logger) MapPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &mapPresenterImpl{
		dataProvider: dataProvider,
		logger:       logger,
	}
}

// AttachView Viewを紐づける。再呼び出しは置き換えになる
func (p *mapPresenterImpl) AttachView(v view.MapView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = v
}

// InitializeMap 現在地取得→View反映→交通情報取得→View反映の順で初期化する
// 途中で失敗しても必ずローディング表示は解除する
func (p *mapPresenterImpl) InitializeMap(ctx context.Context) error {
	v := p.attachedView()
	if v == nil {
		return ErrViewNotAttached
	}
	gen := p.nextGen()

	v.ShowLoading(true)
	defer v.ShowLoading(false)

	location, err := p.dataProvider.GetCurrentLocation(ctx)
	if err != nil {
		v.ShowError(msgLoadLocationFailed)
		return fmt.Errorf("現在地の取得に失敗: %w", err)
	}

	if !p.applyIfLatest(gen, func() {
		p.currentLocation = location
	}) {
		return nil
	}
	v.ShowLocation(location)

	traffic, err := p.dataProvider.GetTrafficData(ctx, location)
	if err != nil {
		v.ShowError(msgLoadLocationFailed)
		return fmt.Errorf("交通情報の取得に失敗: %w", err)
	}
	v.UpdateTrafficInfo(traffic)
	return nil
}

// HandleSearch 現在地を基準にスポット検索を行いViewへ反映する
func (p *mapPresenterImpl) HandleSearch(ctx context.Context, query string) error {
	v, origin, err := p.viewAndLocation()
	if err != nil {
		return err
	}
	gen := p.nextGen()

	v.ShowLoading(true)
	defer v.ShowLoading(false)

	places, err := p.dataProvider.SearchPlaces(ctx, query, origin)
	if err != nil {
		v.ShowError(msgSearchFailed)
		return fmt.Errorf("スポット検索に失敗: %w", err)
	}

	if !p.applyIfLatest(gen, nil) {
		return nil
	}
	v.ShowPlaces(places)
	return nil
}

// HandleGetDirections 現在地を出発地として経路を取得し、保持してViewへ反映する
func (p *mapPresenterImpl) HandleGetDirections(ctx context.Context, destination *model.LocationData) error {
	v, origin, err := p.viewAndLocation()
	if err != nil {
		return err
	}
	gen := p.nextGen()

	v.ShowLoading(true)
	defer v.ShowLoading(false)

	route, err := p.dataProvider.GetRoute(ctx, origin, destination)
	if err != nil {
		v.ShowError(msgDirectionsFailed)
		return fmt.Errorf("経路の取得に失敗: %w", err)
	}

	if !p.applyIfLatest(gen, func() {
		p.currentRoute = route
	}) {
		return nil
	}
	v.ShowRoute(route)
	return nil
}

// StartNavigation 経路取得に加えてナビ中フラグを立て、ライブトラッキングを開始する
func (p *mapPresenterImpl) StartNavigation(ctx context.Context, destination *model.LocationData) error {
	v, origin, err := p.viewAndLocation()
	if err != nil {
		return err
	}
	gen := p.nextGen()

	v.ShowLoading(true)
	defer v.ShowLoading(false)

	route, err := p.dataProvider.GetRoute(ctx, origin, destination)
	if err != nil {
		v.ShowError(msgNavigationFailed)
		return fmt.Errorf("ナビゲーションの開始に失敗: %w", err)
	}

	if !p.applyIfLatest(gen, func() {
		p.currentRoute = route
		p.isNavigating = true
	}) {
		return nil
	}
	v.ShowRoute(route)
	v.ShowNavigationStarted()
	p.StartLiveTracking()
	return nil
}

// HandleLocationUpdate 現在地を無条件に上書きし、Viewがあれば反映する
// 交通情報の更新はベストエフォートで、失敗してもユーザーへは表示しない
func (p *mapPresenterImpl) HandleLocationUpdate(ctx context.Context, newLocation *model.LocationData) {
	p.mu.Lock()
	p.currentLocation = newLocation
	v := p.view
	p.mu.Unlock()

	if v == nil {
		return
	}
	v.ShowLocation(newLocation)

	traffic, err := p.dataProvider.GetTrafficData(ctx, newLocation)
	if err != nil {
		// 位置更新自体は成功しているため、交通情報の失敗はログに留める
		p.logger.Warn("交通情報の更新に失敗", zap.Error(err))
		return
	}
	v.UpdateTrafficInfo(traffic)
}

// HandleLandmarkSearch カテゴリ指定でランドマークを検索しViewへ反映する
func (p *mapPresenterImpl) HandleLandmarkSearch(ctx context.Context, category model.LandmarkCategory) error {
	v, origin, err := p.viewAndLocation()
	if err != nil {
		return err
	}
	gen := p.nextGen()

	v.ShowLoading(true)
	defer v.ShowLoading(false)

	landmarks, err := p.dataProvider.GetLandmarksByCategory(ctx, category, origin)
	if err != nil {
		v.ShowError(msgLandmarksFailed)
		return fmt.Errorf("ランドマーク検索に失敗: %w", err)
	}

	if !p.applyIfLatest(gen, nil) {
		return nil
	}
	v.ShowLandmarks(landmarks)
	return nil
}

// StopNavigation ナビ中フラグと保持経路をクリアし、トラッキングを停止する
// 一度も開始していなくても安全に呼べる
func (p *mapPresenterImpl) StopNavigation() {
	p.dataProvider.StopLiveTracking()

	p.mu.Lock()
	p.isNavigating = false
	p.currentRoute = nil
	v := p.view
	p.mu.Unlock()

	if v != nil {
		v.ShowNavigationStopped()
	}
}

// StartLiveTracking Modelの定期配信を開始する
// ティックごとに現在地を上書きし、Viewへはライブ更新として通知する
func (p *mapPresenterImpl) StartLiveTracking() {
	p.dataProvider.StartLiveTracking(func(location *model.LocationData) {
		p.mu.Lock()
		p.currentLocation = location
		v := p.view
		p.mu.Unlock()

		if v != nil {
			v.UpdateLiveLocation(location)
		}
	})
}

// StopLiveTracking Modelの定期配信を停止する
func (p *mapPresenterImpl) StopLiveTracking() {
	p.dataProvider.StopLiveTracking()
}

// NavigationStatus 現在のナビゲーション状態を取得する（副作用なし）
func (p *mapPresenterImpl) NavigationStatus() NavigationStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return NavigationStatus{
		IsNavigating: p.isNavigating,
		CurrentRoute: p.currentRoute,
	}
}

// attachedView 現在アタッチされているViewを取得する
func (p *mapPresenterImpl) attachedView() view.MapView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// viewAndLocation Viewと現在地の両方が揃っているかをチェックする
func (p *mapPresenterImpl) viewAndLocation() (view.MapView, *model.LocationData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.view == nil {
		return nil, nil, ErrViewNotAttached
	}
	if p.currentLocation == nil {
		return nil, nil, ErrLocationUnknown
	}
	return p.view, p.currentLocation, nil
}

// nextGen 新しいリクエスト世代番号を発行する
func (p *mapPresenterImpl) nextGen() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.issuedGen++
	return p.issuedGen
}

// applyIfLatest genが適用済み世代より新しい場合のみapplyを実行してtrueを返す
// 古いレスポンスは状態を上書きせず破棄される（後から発行された方が勝つ）
func (p *mapPresenterImpl) applyIfLatest(gen uint64, apply func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen < p.appliedGen {
		return false
	}
	p.appliedGen = gen
	if apply != nil {
		apply()
	}
	return true
}
