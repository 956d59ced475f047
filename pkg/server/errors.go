package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/validation"
)

const internalErrorMessage = "サーバー内部でエラーが発生しました"

// respondError writes err as {"error": message}. Caller-facing failures map
// to 400 or 404; anything else is logged and reported as 500.
func respondError(c *gin.Context, logger *zap.Logger, entity string, err error) {
	var caller *validation.Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: validation.NotFound(entity).Message})
	case errors.As(err, &caller) && errors.Is(caller, validation.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: caller.Message})
	case errors.As(err, &caller):
		c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: caller.Message})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "関連するデータとの整合性が取れません"})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: internalErrorMessage})
	}
}

// bindJSON decodes and validates the request body.
func bindJSON(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		return validation.FromBindError(err)
	}

	return nil
}

// pathID reads the :id route parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, validation.InvalidID("id")
	}

	return uint(id), nil
}

// queryID reads an optional numeric query parameter.
func queryID(c *gin.Context, name string) (*uint, error) {
	raw, found := c.GetQuery(name)
	if !found || raw == "" {
		return nil, nil //nolint:nilnil // absent filter
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, validation.InvalidID(name)
	}

	value := uint(id)

	return &value, nil
}
