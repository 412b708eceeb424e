package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadBytes is the default upload cap enforced by ValidateUpload.
const MaxUploadBytes = 5 << 20

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// ValidateUpload checks the filename extension and size before extraction.
func ValidateUpload(filename string, size int64, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q: expected .pdf, .docx, or .txt", ext)
	}
	if size > maxBytes {
		return fmt.Errorf("file too large: %d bytes exceeds limit of %d", size, maxBytes)
	}
	return nil
}

// ExtractText extracts plain text from a resume file based on its extension.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// The raw content is WordprocessingML. Paragraph closes become newlines,
	// every other tag is dropped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTags.ReplaceAllString(content, "")

	return content, nil
}
