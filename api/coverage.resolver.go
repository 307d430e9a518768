package api

import (
	"edufinance/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type coverageRequest struct {
	Observations []observationJson `json:"observations"`
	Symbols      []string          `json:"symbols"`
}

type coverageResponse struct {
	Coverage []coverageSummaryJson `json:"coverage"`
}

func (m ApiHandler) coverage(c *gin.Context) {
	var requestBody coverageRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	table, err := m.observationTable(requestBody.Observations, requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summaries := service.CoverageByTicker(table)

	c.JSON(200, coverageResponse{
		Coverage: toCoverageJson(summaries),
	})
}
