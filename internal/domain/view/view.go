package view

import "NaviDemo-App/internal/domain/model"

// MapView Presenterから呼び出されるViewのコールバックインターフェース
// UI層（地図ウィジェット側）が実装する。Presenterは描画を一切行わず、
// このインターフェース経由でのみ表示を更新する
type MapView interface {
	// ShowLocation 現在地をマップ上に表示する
	ShowLocation(location *model.LocationData)

	// ShowPlaces 検索結果のスポット一覧を表示する
	ShowPlaces(places []*model.PlaceData)

	// ShowLandmarks カテゴリ検索結果のランドマーク一覧を表示する
	ShowLandmarks(landmarks []*model.PlaceData)

	// ShowRoute 経路をマップ上に描画する
	ShowRoute(route *model.RouteData)

	// ShowLoading ローディングインジケーターの表示/非表示を切り替える
	ShowLoading(isLoading bool)

	// ShowError エラーメッセージを表示する
	ShowError(message string)

	// UpdateTrafficInfo 交通情報の表示を更新する
	UpdateTrafficInfo(info string)

	// UpdateLiveLocation ライブトラッキングによる位置更新を反映する
	// （ShowLocationの単発更新とは区別される）
	UpdateLiveLocation(location *model.LocationData)

	// ShowNavigationStarted ナビゲーション開始をUIへ通知する
	ShowNavigationStarted()

	// ShowNavigationStopped ナビゲーション終了をUIへ通知する
	ShowNavigationStopped()
}
