package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) tickers(c *gin.Context) {
	if m.ObservationRepository == nil {
		returnErrorJson(fmt.Errorf("no observation store configured"), c)
		return
	}

	symbols, err := m.ObservationRepository.ListSymbols()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"tickers": symbols})
}
