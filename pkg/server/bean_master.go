package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const beanMasterEntity = "銘柄マスタ"

type BeanMasterServer struct {
	logger           *zap.Logger
	masterRepository repository.BeanMasterRepository
}

func NewBeanMasterServer(masterRepo repository.BeanMasterRepository, logger *zap.Logger) *BeanMasterServer {
	return &BeanMasterServer{masterRepository: masterRepo, logger: logger}
}

func (m *BeanMasterServer) Register(group *gin.RouterGroup) {
	group.GET("", m.ListBeanMasters)
	group.POST("", m.AddBeanMaster)
	group.GET("/:id", m.GetBeanMaster)
	group.PUT("/:id", m.UpdateBeanMaster)
	group.DELETE("/:id", m.DeleteBeanMaster)
}

func (m *BeanMasterServer) ListBeanMasters(c *gin.Context) {
	masters, err := m.masterRepository.ListBeanMasters(c.Request.Context())
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.BeanMastersFromModel(masters))
}

func (m *BeanMasterServer) GetBeanMaster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	m.respondWithMaster(c, http.StatusOK, id)
}

func (m *BeanMasterServer) AddBeanMaster(c *gin.Context) {
	var request api.CreateBeanMasterRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	master, err := m.masterRepository.AddBeanMaster(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	m.respondWithMaster(c, http.StatusCreated, master.ID)
}

func (m *BeanMasterServer) UpdateBeanMaster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	var request api.UpdateBeanMasterRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	master, err := m.masterRepository.GetBeanMasterByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	request.ApplyTo(master)

	if _, err := m.masterRepository.UpdateBeanMaster(c.Request.Context(), master); err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	m.respondWithMaster(c, http.StatusOK, id)
}

// DeleteBeanMaster fails while any coffee bean still refers to the master.
func (m *BeanMasterServer) DeleteBeanMaster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	if err := m.masterRepository.DeleteBeanMaster(c.Request.Context(), id); err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (m *BeanMasterServer) respondWithMaster(c *gin.Context, status int, id uint) {
	master, err := m.masterRepository.GetBeanMasterByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, m.logger, beanMasterEntity, err)

		return
	}

	c.JSON(status, api.BeanMasterFromModel(master))
}
