package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "concierge-router/internal/chat/delivery/http"
	"concierge-router/internal/middleware"
	"concierge-router/internal/model"
	"concierge-router/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	srv.gin.Use(cors.New(srv.corsConfig()))

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(srv.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = srv.allowedOrigins
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID}
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	return cfg
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.NoRoute(response.NotFound)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.gatherer != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.middleware)

	ctx := context.Background()
	srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")

	if srv.telegramHandler != nil {
		// No per-IP limit: Telegram posts every chat from a shared IP pool.
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
