package api

import (
	"net/http"
	"time"

	"pdf_util/config"
	pdfPkg "pdf_util/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server bundles what the handlers need.
type Server struct {
	config    *config.Config
	processor *pdfPkg.Processor
	log       logrus.FieldLogger
}

// NewServer returns a Server running operations through processor.
func NewServer(cfg *config.Config, processor *pdfPkg.Processor, log logrus.FieldLogger) *Server {
	return &Server{config: cfg, processor: processor, log: log}
}

// NewRouter builds the gin engine with all routes installed.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log))
	r.MaxMultipartMemory = s.config.MaxFileSize

	s.SetupRoutes(r)
	return r
}

func (s *Server) SetupRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/merge", s.HandleMerge)
		apiGroup.POST("/rotate", s.HandleRotate)
		apiGroup.POST("/keep", s.HandleKeep)
		apiGroup.POST("/info", s.HandleInfo)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_util",
		})
	})
}

// RequestLogger logs every request through log once it has been served.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
			"client":   c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("Request failed")
			return
		}
		entry.Info("Request served")
	}
}
