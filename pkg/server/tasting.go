package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const tastingEntity = "テイスティング"

type TastingServer struct {
	logger            *zap.Logger
	tastingRepository repository.TastingRepository
	now               func() time.Time
}

func NewTastingServer(tastingRepo repository.TastingRepository, logger *zap.Logger) *TastingServer {
	return &TastingServer{tastingRepository: tastingRepo, logger: logger, now: time.Now}
}

func (t *TastingServer) Register(group *gin.RouterGroup) {
	group.GET("", t.ListTastings)
	group.POST("", t.AddTasting)
	group.GET("/:id", t.GetTasting)
	group.PUT("/:id", t.UpdateTasting)
	group.DELETE("/:id", t.DeleteTasting)
}

// ListTastings returns tastings, newest brew first, each carrying the
// averages of its tasting notes.
func (t *TastingServer) ListTastings(c *gin.Context) {
	var (
		filter repository.TastingFilter
		err    error
	)

	for name, target := range map[string]**uint{
		"coffeeBeanId": &filter.CoffeeBeanID,
		"dripperId":    &filter.DripperID,
		"filterId":     &filter.FilterID,
	} {
		if *target, err = queryID(c, name); err != nil {
			respondError(c, t.logger, tastingEntity, err)

			return
		}
	}

	tastings, err := t.tastingRepository.ListTastings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.TastingsFromModel(tastings))
}

func (t *TastingServer) GetTasting(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	t.respondWithTasting(c, http.StatusOK, id)
}

// AddTasting records a brew. The bean must still be in stock.
func (t *TastingServer) AddTasting(c *gin.Context) {
	var request api.CreateTastingRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	tasting, err := t.tastingRepository.AddTasting(c.Request.Context(), request.ToModel(t.now()))
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	t.respondWithTasting(c, http.StatusCreated, tasting.ID)
}

func (t *TastingServer) UpdateTasting(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	var request api.UpdateTastingRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	tasting, err := t.tastingRepository.GetTastingByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	request.ApplyTo(tasting)

	if _, err := t.tastingRepository.UpdateTasting(c.Request.Context(), tasting); err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	t.respondWithTasting(c, http.StatusOK, id)
}

func (t *TastingServer) DeleteTasting(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	if err := t.tastingRepository.DeleteTasting(c.Request.Context(), id); err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (t *TastingServer) respondWithTasting(c *gin.Context, status int, id uint) {
	tasting, err := t.tastingRepository.GetTastingByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, t.logger, tastingEntity, err)

		return
	}

	c.JSON(status, api.TastingFromModel(tasting))
}
