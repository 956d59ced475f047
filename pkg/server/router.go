package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/auth"
	"droscher.com/BrewLog/pkg/integrations"
	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/storage"
)

// Store is everything the HTTP layer needs from persistence.
type Store interface {
	repository.BeanRepository
	repository.BeanMasterRepository
	repository.OriginRepository
	repository.ShopRepository
	repository.DripperRepository
	repository.FilterRepository
	repository.TastingRepository
	repository.TastingNoteRepository
	repository.StatsRepository
}

type Dependencies struct {
	Store  Store
	Images *storage.Images
	Lookup integrations.Integration
	Auth   *auth.Manager
	// ImageDir is served at /images when set.
	ImageDir string
	// ImageBaseURL redirects /images to an external host when set.
	ImageBaseURL string
}

// NewRouter wires every resource family onto a gin engine.
func NewRouter(deps Dependencies, logger *zap.Logger) (*gin.Engine, error) {
	if err := api.RegisterValidations(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(requestLogger(logger), recovery(logger))

	switch {
	case deps.ImageDir != "":
		router.Static("/images", deps.ImageDir)
	case deps.ImageBaseURL != "":
		base := strings.TrimSuffix(deps.ImageBaseURL, "/")
		router.GET("/images/*filepath", func(c *gin.Context) {
			c.Redirect(http.StatusFound, base+"/images"+c.Param("filepath"))
		})
	}

	routes := router.Group("/api")
	if deps.Auth != nil {
		routes.Use(deps.Auth.WriteGuard())
	}

	NewBeanServer(deps.Store, deps.Lookup, logger).Register(routes.Group("/beans"))
	NewBeanMasterServer(deps.Store, logger).Register(routes.Group("/bean-masters"))
	NewOriginServer(deps.Store, logger).Register(routes.Group("/origins"))
	NewShopServer(deps.Store, logger).Register(routes.Group("/shops"))
	NewDripperServer(deps.Store, logger).Register(routes.Group("/drippers"))
	NewFilterServer(deps.Store, logger).Register(routes.Group("/filters"))
	NewTastingServer(deps.Store, logger).Register(routes.Group("/tastings"))
	NewTastingNoteServer(deps.Store, logger).Register(routes.Group("/tasting-notes"))
	NewStatsServer(deps.Store, logger).Register(routes.Group("/stats"))

	if deps.Images != nil {
		NewUploadServer(deps.Images, logger).Register(routes.Group("/upload"))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "リソースが見つかりません"})
	})

	return router, nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic while handling request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: internalErrorMessage})
	})
}
