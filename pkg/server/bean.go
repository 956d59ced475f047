package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/validation"
)

const beanEntity = "コーヒー豆"

type beanLookup interface {
	LookupBean(ctx context.Context, pageURL string) (*model.BeanDraft, error)
}

type BeanServer struct {
	logger         *zap.Logger
	beanRepository repository.BeanRepository
	lookup         beanLookup
	now            func() time.Time
}

func NewBeanServer(beanRepo repository.BeanRepository, lookup beanLookup, logger *zap.Logger) *BeanServer {
	return &BeanServer{beanRepository: beanRepo, lookup: lookup, logger: logger, now: time.Now}
}

func (b *BeanServer) Register(group *gin.RouterGroup) {
	group.GET("", b.ListBeans)
	group.POST("", b.AddBean)
	group.POST("/lookup", b.LookupBean)
	group.GET("/:id", b.GetBean)
	group.PUT("/:id", b.UpdateBean)
	group.PATCH("/:id", b.UpdateBeanStatus)
	group.DELETE("/:id", b.DeleteBean)
}

func (b *BeanServer) ListBeans(c *gin.Context) {
	var filter repository.BeanFilter

	if status, found := c.GetQuery("status"); found {
		if err := validation.CheckDomain("status", &status, validation.Statuses); err != nil {
			respondError(c, b.logger, beanEntity, err)

			return
		}

		filter.Status = &status
	}

	var err error

	if filter.ShopID, err = queryID(c, "shopId"); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if filter.BeanMasterID, err = queryID(c, "beanMasterId"); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	beans, err := b.beanRepository.ListBeans(c.Request.Context(), filter)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.BeansFromModel(beans))
}

func (b *BeanServer) GetBean(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	bean, err := b.beanRepository.GetBeanByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.BeanFromModel(bean))
}

func (b *BeanServer) AddBean(c *gin.Context) {
	var request api.CreateBeanRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	bean, err := request.ToModel()
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	created, err := b.beanRepository.AddBean(c.Request.Context(), bean)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	b.respondWithBean(c, http.StatusCreated, created.ID)
}

func (b *BeanServer) UpdateBean(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	var request api.UpdateBeanRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	bean, err := b.beanRepository.GetBeanByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if err := request.ApplyTo(bean); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if _, err := b.beanRepository.UpdateBean(c.Request.Context(), bean); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	b.respondWithBean(c, http.StatusOK, id)
}

// UpdateBeanStatus moves a bean between in stock and finished.
func (b *BeanServer) UpdateBeanStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	var request api.UpdateBeanStatusRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if _, err := b.beanRepository.UpdateBeanStatus(c.Request.Context(), id, request.Status, b.now()); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	b.respondWithBean(c, http.StatusOK, id)
}

// DeleteBean removes the bean together with its tastings and their notes.
func (b *BeanServer) DeleteBean(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if err := b.beanRepository.DeleteBean(c.Request.Context(), id); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (b *BeanServer) LookupBean(c *gin.Context) {
	var request api.LookupBeanRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	if b.lookup == nil {
		respondError(c, b.logger, beanEntity, validation.InvalidValue("url", "商品ページの検索は設定されていません"))

		return
	}

	draft, err := b.lookup.LookupBean(c.Request.Context(), request.URL)
	if err != nil {
		b.logger.Warn("bean lookup failed", zap.String("url", request.URL), zap.Error(err))
		respondError(c, b.logger, beanEntity, validation.InvalidValue("url", "商品ページから情報を取得できませんでした"))

		return
	}

	c.JSON(http.StatusOK, api.BeanDraftFromModel(draft))
}

// respondWithBean reloads the bean so the response carries its shop and master.
func (b *BeanServer) respondWithBean(c *gin.Context, status int, id uint) {
	bean, err := b.beanRepository.GetBeanByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, b.logger, beanEntity, err)

		return
	}

	c.JSON(status, api.BeanFromModel(bean))
}
