package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const shopEntity = "ショップ"

type ShopServer struct {
	logger         *zap.Logger
	shopRepository repository.ShopRepository
}

func NewShopServer(shopRepo repository.ShopRepository, logger *zap.Logger) *ShopServer {
	return &ShopServer{shopRepository: shopRepo, logger: logger}
}

func (s *ShopServer) Register(group *gin.RouterGroup) {
	group.GET("", s.ListShops)
	group.POST("", s.AddShop)
	group.GET("/:id", s.GetShop)
	group.PUT("/:id", s.UpdateShop)
	group.DELETE("/:id", s.DeleteShop)
}

func (s *ShopServer) ListShops(c *gin.Context) {
	shops, err := s.shopRepository.ListShops(c.Request.Context())
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.ShopsFromModel(shops))
}

func (s *ShopServer) GetShop(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	shop, err := s.shopRepository.GetShopByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.ShopFromModel(shop))
}

func (s *ShopServer) AddShop(c *gin.Context) {
	var request api.CreateShopRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	shop, err := s.shopRepository.AddShop(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.ShopFromModel(shop))
}

func (s *ShopServer) UpdateShop(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	var request api.UpdateShopRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	shop, err := s.shopRepository.GetShopByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	if err := request.ApplyTo(shop); err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	updated, err := s.shopRepository.UpdateShop(c.Request.Context(), shop)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.ShopFromModel(updated))
}

// DeleteShop keeps the beans bought at the shop and clears their shop.
func (s *ShopServer) DeleteShop(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	if err := s.shopRepository.DeleteShop(c.Request.Context(), id); err != nil {
		respondError(c, s.logger, shopEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}
