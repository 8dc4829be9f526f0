package provider

import (
	"context"
	"errors"

	"NaviDemo-App/internal/domain/model"
)

// ErrLocationUnavailable 現在地が取得できない場合に返すエラー
var ErrLocationUnavailable = errors.New("現在地を取得できませんでした")

// LocationCallback ライブトラッキングの各ティックで呼ばれるコールバック
type LocationCallback func(location *model.LocationData)

// MapDataProvider 地図データ取得を抽象化するインターフェース
// 本番実装は実際の測位・地図・経路APIを呼び出し、デモおよびテストでは
// シミュレーター実装を注入する。呼び出し側はどちらが注入されても
// 同じ振る舞いを期待できる
type MapDataProvider interface {
	// GetCurrentLocation 現在地を取得する
	GetCurrentLocation(ctx context.Context) (*model.LocationData, error)

	// SearchPlaces フリーテキストクエリで origin 周辺のスポットを検索する
	SearchPlaces(ctx context.Context, query string, origin *model.LocationData) ([]*model.PlaceData, error)

	// GetLandmarksByCategory カテゴリ指定で origin 周辺のランドマークを検索する
	GetLandmarksByCategory(ctx context.Context, category model.LandmarkCategory, origin *model.LocationData) ([]*model.PlaceData, error)

	// GetRoute 2地点間の経路情報を取得する
	GetRoute(ctx context.Context, start, end *model.LocationData) (*model.RouteData, error)

	// GetTrafficData 指定地点周辺の交通情報を取得する
	GetTrafficData(ctx context.Context, location *model.LocationData) (string, error)

	// StartLiveTracking 位置情報の定期配信を開始する
	// アクティブなセッションは常に1つだけで、再呼び出しは置き換えになる
	StartLiveTracking(callback LocationCallback)

	// StopLiveTracking 位置情報の定期配信を停止する
	// 停止後はコールバックが一切呼ばれないことが保証される
	StopLiveTracking()
}
