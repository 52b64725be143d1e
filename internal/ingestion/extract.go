package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const pdfGuidance = "PDF support coming soon. Please convert to .txt or .docx, or paste your resume text."

// ExtractText turns an uploaded file into cleaned resume text. Plain text
// and Word documents are supported; PDFs are rejected with guidance. Files
// with an unknown extension are treated as plain text.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		return "", &AdapterError{Filename: filename, Message: pdfGuidance}
	case ".docx", ".doc":
		text, err = extractWordText(data)
		if err != nil {
			return "", &AdapterError{
				Filename: filename,
				Message:  fmt.Sprintf("could not read Word document: %v", err),
			}
		}
	default:
		text = string(data)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &AdapterError{Filename: filename, Message: "the file contains no readable text"}
	}
	return cleaned, nil
}

var (
	docxParaRE = regexp.MustCompile(`</w:p>`)
	docxTagRE  = regexp.MustCompile(`<[^>]+>`)
)

// extractWordText parses a .docx archive and flattens the document XML to
// plain text, one line per paragraph.
func extractWordText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaRE.ReplaceAllString(content, "\n")
	content = docxTagRE.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return content, nil
}
