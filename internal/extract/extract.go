package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lu4p/cat"

	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/pkg/logger_i"
)

var (
	ErrUnsupported = errors.New("unsupported document type")
	ErrNoText      = errors.New("document contains no extractable text")
)

var log = logger_i.NewLogger("extract")

var officeExtensions = map[string]bool{
	".docx": true,
	".odt":  true,
	".rtf":  true,
	".txt":  true,
	".md":   true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// DocTypeFor classifies an upload by extension first, content type second.
func DocTypeFor(filename, contentType string) docModel.DocType {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".pdf":
		return docModel.PDF
	case officeExtensions[ext]:
		return docModel.Office
	case imageExtensions[ext]:
		return docModel.Image
	}

	switch {
	case contentType == "application/pdf":
		return docModel.PDF
	case strings.HasPrefix(contentType, "image/"):
		return docModel.Image
	case strings.HasPrefix(contentType, "text/"),
		strings.Contains(contentType, "officedocument"),
		strings.Contains(contentType, "opendocument"):
		return docModel.Office
	}
	return docModel.ERR
}

// Text extracts the document's text content. Image uploads are rejected
// here; OCR is not part of this service.
func Text(path string, docType docModel.DocType) (string, error) {
	switch docType {
	case docModel.PDF:
		return pdfText(path)
	case docModel.Office:
		raw, err := cat.File(path)
		if err != nil {
			return "", fmt.Errorf("extracting office document: %w", err)
		}
		return finishExtraction(raw)
	case docModel.Image:
		return "", fmt.Errorf("%w: image files require OCR", ErrUnsupported)
	default:
		return "", ErrUnsupported
	}
}

var (
	nullBytes    = regexp.MustCompile("\x00+")
	excessBlank  = regexp.MustCompile(`\n\s*\n\s*\n`)
	trailingWS   = regexp.MustCompile(`(?m)[ \t]+$`)
	controlChars = regexp.MustCompile(`[\x01-\x08\x0b\x0c\x0e-\x1f]`)
)

func cleanText(text string) string {
	text = nullBytes.ReplaceAllString(text, "")
	text = controlChars.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = trailingWS.ReplaceAllString(text, "")
	text = excessBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func finishExtraction(raw string) (string, error) {
	text := cleanText(raw)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
