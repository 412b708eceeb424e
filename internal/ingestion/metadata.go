package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Metadata describes an ingested resume file
type Metadata struct {
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"` // lowercase extension without the dot
	SizeBytes int64  `json:"size_bytes"`
	CharCount int    `json:"char_count"` // of the cleaned text
	LineCount int    `json:"line_count"` // of the cleaned text
	Hash      string `json:"hash"`       // SHA256 hex digest of the cleaned text
}

// NewMetadata builds Metadata for a cleaned resume
func NewMetadata(path string, sizeBytes int64, cleanedText string) *Metadata {
	lineCount := 0
	if cleanedText != "" {
		lineCount = strings.Count(cleanedText, "\n") + 1
	}
	return &Metadata{
		FileName:  filepath.Base(path),
		FileType:  strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		SizeBytes: sizeBytes,
		CharCount: len(cleanedText),
		LineCount: lineCount,
		Hash:      computeHash(cleanedText),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
