// Package server hosts the HTTP authoring surface: upload a workbook,
// select tabs, configure image URLs, convert, then review, edit and
// download the export document.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minwe11/vendorsheet-go/internal/config"
)

// Server wires the session store and HTTP routes.
type Server struct {
	cfg    *config.Config
	store  *Store
	engine *gin.Engine
}

// New builds a server from configuration.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		store: NewStore(cfg.Session.TTL),
	}

	engine := gin.Default()
	engine.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api/v1")
	{
		api.POST("/workbooks", s.handleUpload)
		api.GET("/workbooks/:id", s.handleState)
		api.DELETE("/workbooks/:id", s.handleReset)
		api.PUT("/workbooks/:id/selection", s.handleSelection)
		api.PUT("/workbooks/:id/config", s.handleConfig)
		api.POST("/workbooks/:id/convert", s.handleConvert)
		api.GET("/workbooks/:id/document", s.handleDownload)
		api.PUT("/workbooks/:id/document", s.handleEditDocument)
	}

	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully. The
// session sweeper runs for the same lifetime.
func (s *Server) Run(ctx context.Context) error {
	go s.store.Run(ctx, s.cfg.Session.SweepInterval)

	srv := &http.Server{
		Addr:    s.cfg.Server.Address(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.store.Len()})
}
