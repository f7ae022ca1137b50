package adapter

import (
	"fmt"
	"time"

	"github.com/cramcortex/backend/internal/api"
	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/internal/domain/examModel"
)

func ToUploadResponse(doc docModel.Document) api.UploadResponse {
	return api.UploadResponse{
		DocumentID: doc.Id,
		FileName:   doc.FileName,
		SizeBytes:  doc.SizeBytes,
		AnalyzeURL: fmt.Sprintf("analyze/%s", doc.Id),
	}
}

func ToDocumentResponse(doc docModel.Document) api.DocumentResponse {
	return api.DocumentResponse{
		DocumentID:  doc.Id,
		FileName:    doc.FileName,
		ContentType: string(doc.ContentType),
		SizeBytes:   doc.SizeBytes,
		UploadedAt:  doc.UploadedAt,
	}
}

func ToDocumentListResponse(docs []docModel.Document) api.DocumentListResponse {
	responses := make([]api.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, ToDocumentResponse(doc))
	}
	return api.DocumentListResponse{
		Documents: responses,
		Count:     len(responses),
	}
}

func ToAnalysisResponse(documentId string, result examModel.AnalysisResult, translation *examModel.TranslationResult, start time.Time) api.AnalysisResponse {
	response := api.AnalysisResponse{
		DocumentID:       documentId,
		Status:           "completed",
		QuestionsFound:   result.Summary.TotalQuestions,
		TopicsIdentified: result.Summary.TopicsFound,
		Analysis:         &result,
		StartTime:        start,
		EndTime:          time.Now(),
	}
	if translation != nil {
		response.Translation = &api.TranslationInfo{
			WasTranslated:    translation.HasHebrew,
			OriginalChunks:   translation.OriginalChunks,
			TranslatedChunks: translation.TranslatedChunks,
			CleanGuaranteed:  translation.CleanGuaranteed,
			Message:          translation.Message,
		}
	}
	return response
}

func BadRequest(id string, message string, code int) api.AnalysisResponse {
	return api.AnalysisResponse{
		DocumentID: id,
		Status:     string(api.AnalysisStatusError),
		StartTime:  time.Time{},
		Error: &api.OutgoingError{
			Code:    code,
			Message: message,
			Retry:   false,
		},
	}
}
