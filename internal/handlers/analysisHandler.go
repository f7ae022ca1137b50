package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cramcortex/backend/internal/adapter"
	"github.com/cramcortex/backend/internal/adapter/utils"
	"github.com/cramcortex/backend/internal/api"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/examModel"
	"github.com/cramcortex/backend/internal/extract"
	"github.com/cramcortex/backend/internal/metrics"
	"github.com/cramcortex/backend/internal/translate"
)

// AnalyzeHandler godoc
// @Summary      Analyze an uploaded exam document
// @Description  Extracts text, translates Hebrew content to English when present, and runs question extraction and classification. Runs synchronously; large documents can take minutes.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.AnalysisRequest  true  "Document ID to analyze"
// @Success      200      {object}  api.AnalysisResponse "Completed analysis"
// @Failure      400      {object}  api.AnalysisResponse "Bad request or unreadable document"
// @Failure      404      {object}  api.AnalysisResponse "Document not found"
// @Router       /api/v1/analyze [post]
func AnalyzeHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("invalid context by request", "remote", request.RemoteAddr)
		return
	}

	var requestData api.AnalysisRequest
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("couldn't close the analyze handler reader", "error", err)
		}
	}(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.DocumentID == "" {
		logRH.Warn("bad analysis request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, requestData.DocumentID, "Bad Request")
		return
	}

	log := logRH.With("traceId", traceIdFrom(request.Context()), "documentId", requestData.DocumentID)

	doc, found := documentStore.GetDocument(request.Context(), requestData.DocumentID)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, requestData.DocumentID, "Document not found")
		return
	}

	started := time.Now()
	text, err := extract.Text(doc.StoredPath, doc.ContentType)
	if err != nil {
		log.Warn("text extraction failed", "error", err)
		code := http.StatusBadRequest
		if !errors.Is(err, extract.ErrUnsupported) && !errors.Is(err, extract.ErrNoText) {
			code = http.StatusInternalServerError
		}
		WriteErrorResponse(w, code, requestData.DocumentID, "Could not extract text from document")
		return
	}

	analysisCtx, cancel := context.WithTimeout(request.Context(), config.DocumentTimeout)
	defer cancel()

	// questions_only skips the translation pass; anything else is treated
	// as a full analysis.
	var translation *examModel.TranslationResult
	if requestData.AnalysisType != "questions_only" && translate.ContainsHebrew(text) {
		log.Info("hebrew content detected, translating")
		result := translator.TranslateDocument(analysisCtx, text)
		translation = &result
		text = result.TranslatedText
	}

	result := analysisService.Analyze(analysisCtx, text)
	metrics.CaptureRequestMetrics(result.Summary.ProcessingMethod, time.Since(started))
	log.Info("analysis finished",
		"questions", result.Summary.TotalQuestions,
		"coverage", result.Coverage.Ratio,
		"took", time.Since(started).String())

	writeJsonResponse(w, http.StatusOK, adapter.ToAnalysisResponse(requestData.DocumentID, result, translation, started))
}

// GetStatusHandler godoc
// @Summary      Service status
// @Description  Reports the analysis service lifecycle state and the active model provider.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.StatusResponse
// @Router       /api/v1/status [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	writeJsonResponse(w, http.StatusOK, api.StatusResponse{
		Status:       "ok",
		ServiceState: analysisService.State().String(),
		Provider:     providerName,
	})
}

// GetAnalysisStatusHandler godoc
// @Summary      Per-analysis status
// @Description  Analysis runs synchronously, so any id that refers to a stored document reports pending until its analyze call returns.
// @Tags         Status
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.AnalysisStatusResponse
// @Failure      404  {object}  api.AnalysisResponse  "Document not found"
// @Router       /api/v1/analysis/{id}/status [get]
func GetAnalysisStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	documentId := utils.GetChiURLParam(r, "id")
	if _, found := documentStore.GetDocument(r.Context(), documentId); !found {
		WriteErrorResponse(w, http.StatusNotFound, documentId, "Document not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AnalysisStatusResponse{
		DocumentID:   documentId,
		Status:       "pending",
		ServiceState: analysisService.State().String(),
	})
}
