package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const (
	dripperEntity = "ドリッパー"
	filterEntity  = "フィルター"
)

type DripperServer struct {
	logger            *zap.Logger
	dripperRepository repository.DripperRepository
}

func NewDripperServer(dripperRepo repository.DripperRepository, logger *zap.Logger) *DripperServer {
	return &DripperServer{dripperRepository: dripperRepo, logger: logger}
}

func (d *DripperServer) Register(group *gin.RouterGroup) {
	group.GET("", d.ListDrippers)
	group.POST("", d.AddDripper)
	group.GET("/:id", d.GetDripper)
	group.PUT("/:id", d.UpdateDripper)
	group.DELETE("/:id", d.DeleteDripper)
}

func (d *DripperServer) ListDrippers(c *gin.Context) {
	drippers, err := d.dripperRepository.ListDrippers(c.Request.Context())
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.DrippersFromModel(drippers))
}

func (d *DripperServer) GetDripper(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	dripper, err := d.dripperRepository.GetDripperByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.DripperFromModel(dripper))
}

func (d *DripperServer) AddDripper(c *gin.Context) {
	var request api.CreateDripperRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	dripper, err := d.dripperRepository.AddDripper(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.DripperFromModel(dripper))
}

func (d *DripperServer) UpdateDripper(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	var request api.UpdateDripperRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	dripper, err := d.dripperRepository.GetDripperByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	request.ApplyTo(dripper)

	updated, err := d.dripperRepository.UpdateDripper(c.Request.Context(), dripper)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.DripperFromModel(updated))
}

func (d *DripperServer) DeleteDripper(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	if err := d.dripperRepository.DeleteDripper(c.Request.Context(), id); err != nil {
		respondError(c, d.logger, dripperEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type FilterServer struct {
	logger           *zap.Logger
	filterRepository repository.FilterRepository
}

func NewFilterServer(filterRepo repository.FilterRepository, logger *zap.Logger) *FilterServer {
	return &FilterServer{filterRepository: filterRepo, logger: logger}
}

func (f *FilterServer) Register(group *gin.RouterGroup) {
	group.GET("", f.ListFilters)
	group.POST("", f.AddFilter)
	group.GET("/:id", f.GetFilter)
	group.PUT("/:id", f.UpdateFilter)
	group.DELETE("/:id", f.DeleteFilter)
}

func (f *FilterServer) ListFilters(c *gin.Context) {
	filters, err := f.filterRepository.ListFilters(c.Request.Context())
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.FiltersFromModel(filters))
}

func (f *FilterServer) GetFilter(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	filter, err := f.filterRepository.GetFilterByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.FilterFromModel(filter))
}

func (f *FilterServer) AddFilter(c *gin.Context) {
	var request api.CreateFilterRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	filter, err := f.filterRepository.AddFilter(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.FilterFromModel(filter))
}

func (f *FilterServer) UpdateFilter(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	var request api.UpdateFilterRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	filter, err := f.filterRepository.GetFilterByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	request.ApplyTo(filter)

	updated, err := f.filterRepository.UpdateFilter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.FilterFromModel(updated))
}

func (f *FilterServer) DeleteFilter(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	if err := f.filterRepository.DeleteFilter(c.Request.Context(), id); err != nil {
		respondError(c, f.logger, filterEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}
