package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/gin-gonic/gin"
)

type Controller interface {
	RegisterRoutes(api *gin.RouterGroup)
}

func NewRouter(cfg *config.Config, controllers ...Controller) *gin.Engine {
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})

	api := router.Group("/api")
	api.Use(basicAuth(cfg))
	for _, controller := range controllers {
		controller.RegisterRoutes(api)
	}

	return router
}

func basicAuth(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
