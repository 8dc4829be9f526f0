package handler_test

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NaviDemo-App/internal/handler"
	"NaviDemo-App/internal/infrastructure/maps"
	"NaviDemo-App/internal/presenter"
	"NaviDemo-App/internal/view"
)

// setupRouter 遅延なしのシミュレーターで本番同様のルーティングを構築する
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	mapProvider := maps.NewSimulatedMapProvider(nil,
		maps.WithLatencyScale(0),
		maps.WithRandSource(rand.NewSource(1)),
	)
	events := view.NewSSEView(nil)
	mapPresenter := presenter.NewMapPresenter(mapProvider, nil)
	mapPresenter.AttachView(events)
	mapHandler := handler.NewMapHandler(mapPresenter, events)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/map/initialize", mapHandler.PostInitialize)
		api.GET("/places/search", mapHandler.GetSearch)
		api.GET("/landmarks/:category", mapHandler.GetLandmarks)
		api.POST("/routes/directions", mapHandler.PostDirections)
		api.POST("/navigation/start", mapHandler.PostNavigationStart)
		api.POST("/navigation/stop", mapHandler.PostNavigationStop)
		api.GET("/navigation/status", mapHandler.GetNavigationStatus)
		api.POST("/location/update", mapHandler.PostLocationUpdate)
		api.GET("/health", mapHandler.GetHealth)
	}
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetHealth(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestGetSearch_BeforeInitialize(t *testing.T) {
	r := setupRouter()

	// 現在地未取得のため前提条件エラーになる
	w := doRequest(r, http.MethodGet, "/api/places/search?q=coffee", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInitializeThenSearch(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodPost, "/api/map/initialize", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/places/search?q=coffee", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSearch_MissingQuery(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodGet, "/api/places/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLandmarks_InvalidCategory(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodGet, "/api/landmarks/spaceport", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLandmarks_ValidCategory(t *testing.T) {
	r := setupRouter()

	require.Equal(t, http.StatusOK,
		doRequest(r, http.MethodPost, "/api/map/initialize", "").Code)

	w := doRequest(r, http.MethodGet, "/api/landmarks/restaurant", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostDirections_InvalidBody(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodPost, "/api/routes/directions", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/routes/directions",
		`{"destination": {"latitude": 999, "longitude": 0}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigationFlow(t *testing.T) {
	r := setupRouter()

	require.Equal(t, http.StatusOK,
		doRequest(r, http.MethodPost, "/api/map/initialize", "").Code)

	w := doRequest(r, http.MethodPost, "/api/navigation/start",
		`{"destination": {"latitude": 12.9352, "longitude": 77.6245}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/navigation/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_navigating":true`)

	w = doRequest(r, http.MethodPost, "/api/navigation/stop", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/navigation/status", "")
	assert.Contains(t, w.Body.String(), `"is_navigating":false`)
}

func TestPostNavigationStop_WithoutStart(t *testing.T) {
	r := setupRouter()

	// 開始前の停止も常に安全
	w := doRequest(r, http.MethodPost, "/api/navigation/stop", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostLocationUpdate(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodPost, "/api/location/update",
		`{"location": {"latitude": 13.0, "longitude": 77.6}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// 位置更新後は検索の前提条件が満たされる
	w = doRequest(r, http.MethodGet, "/api/places/search?q=tea", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostLocationUpdate_Invalid(t *testing.T) {
	r := setupRouter()

	w := doRequest(r, http.MethodPost, "/api/location/update",
		`{"location": {"latitude": -95, "longitude": 0}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
