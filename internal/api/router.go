package api

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/placeintel-backend-go/internal/config"
	"github.com/jengzang/placeintel-backend-go/internal/handler"
	"github.com/jengzang/placeintel-backend-go/internal/maps"
	"github.com/jengzang/placeintel-backend-go/internal/middleware"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if cfg.GoogleAPIKey == "" {
		log.Printf("[Router] GOOGLE_API_KEY is not set; search and labeling will fail")
	}
	mapsClient := maps.NewClient(cfg.GoogleAPIKey)

	repo := repository.NewPlaceRepository(db)

	placeService := service.NewPlaceService(mapsClient, repo)
	densityService := service.NewDensityService(repo, func(ctx context.Context, lat, lng float64) (string, error) {
		return mapsClient.ReverseGeocode(ctx, lat, lng)
	})
	vizService := service.NewVizService(repo)
	exportService := service.NewExportService(repo)

	authHandler := handler.NewAuthHandler(cfg)
	placeHandler := handler.NewPlaceHandler(placeService)
	densityHandler := handler.NewDensityHandler(densityService)
	vizHandler := handler.NewVizHandler(vizService, repo)
	exportHandler := handler.NewExportHandler(exportService)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Place Intelligence API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/token", authHandler.Token)
		}

		places := api.Group("/places")
		{
			places.POST("/search", middleware.RequireAuth(cfg.JWTSecret), placeHandler.Search)
			places.GET("/searches", placeHandler.ListSearches)
			places.GET("/searches/:id", placeHandler.GetSearch)
		}

		analysis := api.Group("/analysis")
		{
			analysis.GET("/density", densityHandler.Analyze)
		}

		viz := api.Group("/viz")
		{
			viz.GET("/heatmap", vizHandler.Heatmap)
			viz.GET("/heatmap.html", vizHandler.HeatmapHTML)
		}

		export := api.Group("/export")
		{
			export.GET("/csv", exportHandler.CSV)
			export.GET("/geojson", exportHandler.GeoJSON)
		}
	}

	return r
}
