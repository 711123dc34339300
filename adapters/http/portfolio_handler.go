package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/muftipurwa/portfolio-api/internal/application/usecase/portfolio"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type PortfolioHandler struct {
	getPortfolioUseCase *portfolioUC.GetPortfolioUseCase
	logger              logger.Logger
}

func NewPortfolioHandler(getUC *portfolioUC.GetPortfolioUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{getPortfolioUseCase: getUC, logger: log}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	output, err := h.getPortfolioUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioDTO(output.Snapshot))
}
