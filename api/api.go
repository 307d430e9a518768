package api

import (
	"database/sql"
	"edufinance/internal/app"
	"edufinance/internal/logger"
	"edufinance/internal/repository"
	"errors"
	"fmt"
	"time"

	"edufinance/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                    *sql.DB
	NormalizeHandler      app.NormalizeHandler
	ObservationRepository repository.ObservationRepository
	RunRepository         repository.NormalizationRunRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to edufinance"})
	})
	router.POST("/normalize", m.normalize)
	router.POST("/coverage", m.coverage)
	router.GET("/tickers", m.tickers)
	router.GET("/runs", m.runs)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnPipelineError maps the pipeline's error kinds onto http statuses.
func returnPipelineError(err error, c *gin.Context) {
	var integrityErr domain.DataIntegrityError
	if errors.As(err, &integrityErr) {
		c.AbortWithStatusJSON(422, gin.H{
			"error":   integrityErr.Error(),
			"tickers": integrityErr.Tickers,
		})
		return
	}
	var rangeErr domain.InvalidRangeError
	if errors.As(err, &rangeErr) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	var emptyErr domain.EmptyResultError
	if errors.As(err, &emptyErr) {
		returnErrorJsonCode(err, c, 422)
		return
	}
	returnErrorJson(err, c)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	start := time.Now().UTC()

	ctx.Next()

	logger.Info(
		"%s %s %s -> %d (%dms)",
		requestID,
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
