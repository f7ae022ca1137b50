package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
)

const pageExtractionTimeout = 10 * time.Second

// pdfText pulls plain text from every page. Page markers are inserted so
// multi-page exams keep their structure for chunking.
func pdfText(path string) (string, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	var b strings.Builder
	pages := reader.NumPage()
	for pageNum := 1; pageNum <= pages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := protectExtract(page)
		if err != nil {
			log.Warn("skipping unreadable page", "page", pageNum, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if pages > 1 {
			fmt.Fprintf(&b, "--- Page %d ---\n", pageNum)
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	return finishExtraction(b.String())
}

// protectExtract guards GetPlainText, which can panic or hang on malformed
// pages, behind a goroutine with a timeout.
func protectExtract(page pdf.Page) (text string, err error) {
	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("page extraction panicked: %v", r)}
			}
		}()
		t, extractErr := page.GetPlainText(nil)
		done <- result{text: t, err: extractErr}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-time.After(pageExtractionTimeout):
		return "", fmt.Errorf("page extraction timed out after %s", pageExtractionTimeout)
	}
}
