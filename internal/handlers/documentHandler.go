package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cramcortex/backend/internal/adapter"
	"github.com/cramcortex/backend/internal/adapter/utils"
	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/internal/extract"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// UploadDocumentHandler godoc
// @Summary      Upload an exam document
// @Description  Receives a PDF, office document or image via multipart/form-data and stores it for analysis.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The exam file to upload"
// @Success      201  {object}  api.UploadResponse     "Document stored"
// @Failure      400  {object}  api.AnalysisResponse   "Missing file, oversized upload or unsupported type"
// @Failure      500  {object}  api.AnalysisResponse   "Storage error"
// @Router       /api/v1/documents/upload [post]
func UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("invalid context by request", "remote", r.RemoteAddr)
		return
	}

	targetDir, errString := getUploadDirectory()
	if errString != "" {
		logRH.Error("couldn't get upload directory", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	contentType := fileMetadata.Header.Get("Content-Type")
	docType := extract.DocTypeFor(fileMetadata.Filename, contentType)
	if docType == docModel.ERR {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Unsupported document type")
		return
	}

	documentId := utils.GetNewUUID()
	storedPath := filepath.Join(targetDir, documentId+filepath.Ext(fileMetadata.Filename))

	destinationFileWriter, err := os.Create(storedPath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}
	defer destinationFileWriter.Close()

	written, err := io.Copy(destinationFileWriter, fileReader)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Write error")
		return
	}

	doc := docModel.Document{
		Id:          documentId,
		FileName:    fileMetadata.Filename,
		StoredPath:  storedPath,
		ContentType: docType,
		SizeBytes:   written,
		UploadedAt:  time.Now().UTC(),
	}
	if err := documentStore.SaveDocument(r.Context(), doc); err != nil {
		logRH.Error("could not persist document metadata", "documentId", documentId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, documentId, "Storage error")
		return
	}

	logRH.Info("document uploaded", "traceId", traceIdFrom(r.Context()), "documentId", documentId, "size", written)
	writeJsonResponse(w, http.StatusCreated, adapter.ToUploadResponse(doc))
}

// ListDocumentsHandler godoc
// @Summary      List uploaded documents
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.DocumentListResponse
// @Router       /api/v1/documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	docs, err := documentStore.ListDocuments(r.Context())
	if err != nil {
		logRH.Error("could not list documents", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentListResponse(docs))
}

// DeleteDocumentHandler godoc
// @Summary      Delete a document
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      204  "Deleted"
// @Failure      404  {object}  api.AnalysisResponse  "Document not found"
// @Router       /api/v1/documents/{id} [delete]
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	documentId := utils.GetChiURLParam(r, "id")
	doc, found := documentStore.GetDocument(r.Context(), documentId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, documentId, "Document not found")
		return
	}

	if err := documentStore.DeleteDocument(r.Context(), documentId); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, documentId, "Storage error")
		return
	}
	if err := os.Remove(doc.StoredPath); err != nil && !os.IsNotExist(err) {
		logRH.Warn("could not remove stored file", "path", doc.StoredPath, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
