package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cramcortex/backend/internal/adapter"
	"github.com/cramcortex/backend/internal/analysis"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/internal/translate"
	"github.com/cramcortex/backend/pkg/logger_i"
)

var (
	logRH           *logger_i.Logger
	documentStore   docModel.DocumentStore
	analysisService analysis.Service
	translator      translate.Translator
	providerName    string
)

// Init wires the handler package's collaborators. Must run before the
// server starts accepting requests.
func Init(store docModel.DocumentStore, service analysis.Service, trans translate.Translator, provider string) {
	logRH = logger_i.NewLogger("handlers")
	documentStore = store
	analysisService = service
	translator = trans
	providerName = provider
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Too late for a clean status code, log and move on
		logRH.Error("error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, message, httpCode))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

func traceIdFrom(ctx context.Context) string {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return trace
	}
	return ""
}

func getUploadDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, config.UploadDirName)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}
