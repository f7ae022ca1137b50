package api

import (
	"time"

	"github.com/cramcortex/backend/internal/domain/examModel"
)

type AnalysisStatus string

const (
	AnalysisStatusError AnalysisStatus = "Error"
)

type UploadResponse struct {
	DocumentID string `json:"document_id" example:"4f7c1a2e"`
	FileName   string `json:"file_name" example:"final_exam.pdf"`
	SizeBytes  int64  `json:"size_bytes" example:"482133"`
	AnalyzeURL string `json:"analyze_url"`
}

type DocumentResponse struct {
	DocumentID  string    `json:"document_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count"`
}

type TranslationInfo struct {
	WasTranslated    bool   `json:"was_translated"`
	OriginalChunks   int    `json:"original_chunks,omitempty"`
	TranslatedChunks int    `json:"translated_chunks,omitempty"`
	CleanGuaranteed  bool   `json:"clean_guaranteed"`
	Message          string `json:"message,omitempty"`
}

type AnalysisResponse struct {
	DocumentID       string                    `json:"document_id"`
	Status           string                    `json:"status"`
	QuestionsFound   int                       `json:"questions_found"`
	TopicsIdentified int                       `json:"topics_identified"`
	Translation      *TranslationInfo          `json:"translation,omitempty"`
	Analysis         *examModel.AnalysisResult `json:"analysis,omitempty"`
	StartTime        time.Time                 `json:"start_time"`
	EndTime          time.Time                 `json:"end_time,omitempty"`
	Error            *OutgoingError            `json:"error,omitempty"`
}

type AnalysisStatusResponse struct {
	DocumentID   string `json:"document_id"`
	Status       string `json:"status"`
	ServiceState string `json:"analysis_service_state"`
}

type StatusResponse struct {
	Status       string `json:"status"`
	ServiceState string `json:"analysis_service_state"`
	Provider     string `json:"llm_provider,omitempty"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Document not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// requests---------------------

type AnalysisRequest struct {
	DocumentID   string `json:"document_id" validate:"required"`
	AnalysisType string `json:"analysis_type,omitempty"`
}
