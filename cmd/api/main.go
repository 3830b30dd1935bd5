// @title Drop Watch API
// @version 1.0
// @description Citizen water-leak reporting and municipal tracking
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/dropwatch/docs"
	"github.com/xyz-asif/dropwatch/internal/config"
	"github.com/xyz-asif/dropwatch/internal/middleware"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/metrics"
	"github.com/xyz-asif/dropwatch/internal/pkg/response"
	"github.com/xyz-asif/dropwatch/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.Default()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// Cancelled on shutdown; stops background work such as rate-limit cleanup.
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	app, err := routes.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize: %v", err)
	}
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			log.Error("Failed to close backend: %v", err)
		}
	}()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status":  "ok",
			"backend": cfg.StoreBackend,
			"time":    time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	if err := routes.SetupRoutes(ctx, router, app, cfg, log); err != nil {
		log.Fatal("Failed to register routes: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting on port %s (env=%s, backend=%s)", cfg.Port, cfg.AppEnv, cfg.StoreBackend)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
