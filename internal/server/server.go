package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hvacscan/internal/config"
	"hvacscan/internal/pipeline"
	"hvacscan/internal/storage"
)

type Server struct {
	router   *gin.Engine
	db       *storage.DB
	cfg      config.Config
	log      *zap.Logger
	register *pipeline.RegisterService
}

func New(db *storage.DB, cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		router:   gin.New(),
		db:       db,
		cfg:      cfg,
		log:      log,
		register: pipeline.NewRegisterService(db, cfg, log),
	}
	s.router.Use(gin.Recovery(), s.requestLogger(), cors())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/master-pma", s.getMasterPMA)
	api.POST("/master-pma", s.postMasterPMA)

	api.POST("/classify", s.classify)
	api.POST("/duplicates/check", s.checkDuplicates)
	api.POST("/search-manual", s.searchManual)
	api.POST("/extraction/parse", s.parseExtraction)

	api.GET("/projects", s.listProjects)
	api.POST("/projects", s.createProject)
	api.GET("/projects/:id/equipment", s.listEquipment)
	api.POST("/projects/:id/equipment", s.addEquipment)
	api.POST("/projects/:id/import", s.importEquipmentList)
	api.GET("/projects/:id/export", s.exportProject)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.log.Info("http server listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
