package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"NaviDemo-App/internal/handler"
	"NaviDemo-App/internal/infrastructure/logging"
	"NaviDemo-App/internal/infrastructure/maps"
	"NaviDemo-App/internal/presenter"
	"NaviDemo-App/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	logger, err := logging.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatalf("ロガー初期化失敗: %v", err)
	}
	defer logger.Sync()

	// ライブトラッキングの配信間隔（省略時は3秒）
	tickInterval := 3 * time.Second
	if v := os.Getenv("TRACKING_INTERVAL_SECONDS"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			tickInterval = time.Duration(sec) * time.Second
		}
	}

	// シミュレーターの構築
	// 本番実装（実際の測位・地図API）へ差し替える場合もこの1箇所の変更で済む
	mapProvider := maps.NewSimulatedMapProvider(logger,
		maps.WithTickInterval(tickInterval),
	)

	events := view.NewSSEView(logger)
	mapPresenter := presenter.NewMapPresenter(mapProvider, logger)
	mapPresenter.AttachView(events)

	mapHandler := handler.NewMapHandler(mapPresenter, events)

	r := gin.Default()
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
		api.GET("/events", mapHandler.GetEvents)
		api.GET("/health", mapHandler.GetHealth)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("🚀 NaviDemoサーバー起動", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("サーバー起動に失敗", zap.Error(err))
	}
}
