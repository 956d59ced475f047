package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/validation"
)

const (
	defaultTopBeans = 5
	maxTopBeans     = 50
)

type StatsServer struct {
	logger          *zap.Logger
	statsRepository repository.StatsRepository
}

func NewStatsServer(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsServer {
	return &StatsServer{statsRepository: statsRepo, logger: logger}
}

func (s *StatsServer) Register(group *gin.RouterGroup) {
	group.GET("", s.GetStats)
}

func (s *StatsServer) GetStats(c *gin.Context) {
	limit := defaultTopBeans

	if raw, found := c.GetQuery("top"); found {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > maxTopBeans {
			respondError(c, s.logger, "", validation.OutOfRange("top", validation.Range{Name: "top", Max: maxTopBeans, Integral: true}))

			return
		}

		limit = parsed
	}

	stats, err := s.statsRepository.GetJournalStats(c.Request.Context())
	if err != nil {
		respondError(c, s.logger, "", err)

		return
	}

	top, err := s.statsRepository.GetTopBeans(c.Request.Context(), limit)
	if err != nil {
		respondError(c, s.logger, "", err)

		return
	}

	c.JSON(http.StatusOK, api.StatsFromModel(stats, top))
}
