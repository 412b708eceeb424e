// Package ingestion reads resume files and produces clean plain text for the
// evaluation pipeline.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// CleanText cleans and normalizes resume text while preserving line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// 3. Remove excessive blank lines (max 2 consecutive)
	result = removeExcessiveBlankLines(result)

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving bullets and indentation
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	// Preserve bullet markers so experience lines keep their shape
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ") {
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	content := spaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// IngestFromFile reads a resume file, extracts its text, and returns cleaned
// text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw, err := ExtractText(path, data)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(raw)
	metadata := NewMetadata(path, int64(len(data)), cleanedText)

	return cleanedText, metadata, nil
}
