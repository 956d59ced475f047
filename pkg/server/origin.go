package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const originEntity = "産地"

type OriginServer struct {
	logger           *zap.Logger
	originRepository repository.OriginRepository
}

func NewOriginServer(originRepo repository.OriginRepository, logger *zap.Logger) *OriginServer {
	return &OriginServer{originRepository: originRepo, logger: logger}
}

func (o *OriginServer) Register(group *gin.RouterGroup) {
	group.GET("", o.ListOrigins)
	group.POST("", o.AddOrigin)
	group.GET("/:id", o.GetOrigin)
	group.PUT("/:id", o.UpdateOrigin)
	group.DELETE("/:id", o.DeleteOrigin)
}

func (o *OriginServer) ListOrigins(c *gin.Context) {
	origins, err := o.originRepository.ListOrigins(c.Request.Context())
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.OriginsFromModel(origins))
}

func (o *OriginServer) GetOrigin(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	origin, err := o.originRepository.GetOriginByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.OriginFromModel(origin))
}

func (o *OriginServer) AddOrigin(c *gin.Context) {
	var request api.CreateOriginRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	origin, err := o.originRepository.AddOrigin(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.OriginFromModel(origin))
}

func (o *OriginServer) UpdateOrigin(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	var request api.UpdateOriginRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	origin, err := o.originRepository.GetOriginByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	request.ApplyTo(origin)

	updated, err := o.originRepository.UpdateOrigin(c.Request.Context(), origin)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.OriginFromModel(updated))
}

// DeleteOrigin clears the origin from any bean master that used it.
func (o *OriginServer) DeleteOrigin(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	if err := o.originRepository.DeleteOrigin(c.Request.Context(), id); err != nil {
		respondError(c, o.logger, originEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}
