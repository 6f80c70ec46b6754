// Package server is the HTTP boundary: request routing, file-upload
// handling, CORS and status mapping. No analysis logic lives here.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/esgsentinel/sentinel/internal/common"
	"github.com/esgsentinel/sentinel/internal/export"
	"github.com/esgsentinel/sentinel/internal/pipeline"
)

// Service wires the analysis pipeline and exporter to HTTP routes.
type Service struct {
	processor *pipeline.Processor
	exporter  *export.Service
	cfg       common.ServerConfig
	logger    *zap.Logger
}

func NewService(proc *pipeline.Processor, exp *export.Service, cfg common.ServerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{processor: proc, exporter: exp, cfg: cfg, logger: logger}
}

// Routes builds the gin engine with middleware and all endpoints.
func (s *Service) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.POST("/analyze-loan", s.handleAnalyze)
	r.POST("/analyze-loan/export", s.handleExport)
	return r
}

func (s *Service) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := common.NewRequestID()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), requestID))
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		s.logger.Info("http.request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (s *Service) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "esg-sentinel",
		"endpoints": []string{"/analyze-loan", "/analyze-loan/export", "/health"},
	})
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps pipeline/upload errors to a status code and a
// FastAPI-compatible {"detail": ...} body the demo UI already parses.
func (s *Service) respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		c.JSON(status, gin.H{"detail": "internal error"})
		return
	}
	s.logger.Warn("request rejected", zap.Error(err))
	c.JSON(status, gin.H{"detail": err.Error()})
}
