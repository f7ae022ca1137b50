package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/cramcortex/backend/internal/adapter/utils"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/middleware"
	"github.com/cramcortex/backend/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Get("/api/v1/health", middleware.HealthHandler)
	r.Router.Post("/api/v1/documents/upload", middleware.UploadDocumentHandler)
	r.Router.Get("/api/v1/documents", middleware.ListDocumentsHandler)
	r.Router.Delete("/api/v1/documents/{id}", middleware.DeleteDocumentHandler)
	r.Router.Post("/api/v1/analyze", middleware.AnalyzeHandler)
	r.Router.Get("/api/v1/status", middleware.GetStatusHandler)
	r.Router.Get("/api/v1/analysis/{id}/status", middleware.GetAnalysisStatusHandler)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully", "error", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force shut down")
		os.Exit(1)
	}
}
