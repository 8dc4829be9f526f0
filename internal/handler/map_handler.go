package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"NaviDemo-App/internal/domain/model"
	"NaviDemo-App/internal/presenter"
	"NaviDemo-App/internal/view"
)

// MapHandler 地図デモAPIのハンドラー
// リクエストの検証とPresenter呼び出しだけを行い、表示の更新は
// Presenter経由でSSEViewへ流れる
type MapHandler struct {
	mapPresenter presenter.MapPresenter
	events       *view.SSEView
}

// NewMapHandler 新しいMapHandlerインスタンスを作成する
func NewMapHandler(mapPresenter presenter.MapPresenter, events *view.SSEView) *MapHandler {
	return &MapHandler{
		mapPresenter: mapPresenter,
		events:       events,
	}
}

// destinationRequest 目的地を受け取るリクエストボディ
type destinationRequest struct {
	Destination *model.LocationData `json:"destination" binding:"required"`
}

// locationUpdateRequest 位置更新のリクエストボディ
type locationUpdateRequest struct {
	Location *model.LocationData `json:"location" binding:"required"`
}

// PostInitialize マップを初期化するエンドポイント
// POST /api/map/initialize
func (h *MapHandler) PostInitialize(c *gin.Context) {
	if err := h.mapPresenter.InitializeMap(c.Request.Context()); err != nil {
		h.respondPresenterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSearch スポット検索を実行するエンドポイント
// GET /api/places/search?q=...
func (h *MapHandler) GetSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "検索クエリが指定されていません",
		})
		return
	}

	if err := h.mapPresenter.HandleSearch(c.Request.Context(), query); err != nil {
		h.respondPresenterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetLandmarks カテゴリ指定でランドマーク検索を実行するエンドポイント
// GET /api/landmarks/:category
func (h *MapHandler) GetLandmarks(c *gin.Context) {
	category := model.LandmarkCategory(c.Param("category"))
	if !category.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "未対応のカテゴリです",
			"details": string(category),
		})
		return
	}

	if err := h.mapPresenter.HandleLandmarkSearch(c.Request.Context(), category); err != nil {
		h.respondPresenterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PostDirections 経路取得を実行するエンドポイント
// POST /api/routes/directions
func (h *MapHandler) PostDirections(c *gin.Context) {
	destination, ok := h.bindDestination(c)
	if !ok {
		return
	}

	if err := h.mapPresenter.HandleGetDirections(c.Request.Context(), destination); err != nil {
		h.respondPresenterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PostNavigationStart ナビゲーションを開始するエンドポイント
// POST /api/navigation/start
func (h *MapHandler) PostNavigationStart(c *gin.Context) {
	destination, ok := h.bindDestination(c)
	if !ok {
		return
	}

	if err := h.mapPresenter.StartNavigation(c.Request.Context(), destination); err != nil {
		h.respondPresenterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PostNavigationStop ナビゲーションを終了するエンドポイント
// POST /api/navigation/stop
func (h *MapHandler) PostNavigationStop(c *gin.Context) {
	h.mapPresenter.StopNavigation()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetNavigationStatus ナビゲーション状態を取得するエンドポイント
// GET /api/navigation/status
func (h *MapHandler) GetNavigationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapPresenter.NavigationStatus())
}

// PostLocationUpdate 現在地を更新するエンドポイント
// POST /api/location/update
func (h *MapHandler) PostLocationUpdate(c *gin.Context) {
	var req locationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}
	if err := validateLocation(req.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	h.mapPresenter.HandleLocationUpdate(c.Request.Context(), req.Location)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetEvents Viewイベントを購読するSSEエンドポイント
// GET /api/events
func (h *MapHandler) GetEvents(c *gin.Context) {
	ch, cancel := h.events.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			payload := event.Payload
			if payload == nil {
				payload = gin.H{}
			}
			c.SSEvent(event.Type, payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// GetHealth ヘルスチェックエンドポイント
// GET /api/health
func (h *MapHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "NaviDemo-App"})
}

// respondPresenterError Presenterのエラーを適切なHTTPレスポンスへ変換する
// 前提条件エラー（View未アタッチ・現在地未取得）は409として区別する
func (h *MapHandler) respondPresenterError(c *gin.Context, err error) {
	if errors.Is(err, presenter.ErrViewNotAttached) || errors.Is(err, presenter.ErrLocationUnknown) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "操作の前提条件が満たされていません",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "操作に失敗しました",
		"details": err.Error(),
	})
}

// ValidationError バリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validateLocation 緯度経度の範囲を検証する
func validateLocation(location *model.LocationData) error {
	if location == nil {
		return &ValidationError{Field: "location", Message: "位置情報は必須です"}
	}
	if location.Latitude < -90 || location.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if location.Longitude < -180 || location.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: "経度は-180から180の範囲で指定してください"}
	}
	return nil
}

// bindDestination 目的地リクエストをバインド・検証する共通処理
func (h *MapHandler) bindDestination(c *gin.Context) (*model.LocationData, bool) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return nil, false
	}
	if err := validateLocation(req.Destination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return nil, false
	}
	return req.Destination, true
}
