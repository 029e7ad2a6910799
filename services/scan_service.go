package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// ScanResult is the structured record the OCR collaborator extracts from a
// photographed identity document. Document number and name are required for a
// usable result; the rest may come back empty.
type ScanResult struct {
	DocumentNumber string `json:"id_number"`
	Name           string `json:"name"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	DocumentType   string `json:"type"` // ID_CARD or PASSPORT
}

const scanPrompt = `Extract the identity document fields from this image.
Use an empty string for anything you cannot read. Dates as YYYY-MM-DD.`

// response schema forcing the model into the ScanResult shape.
var scanResponseSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"id_number": {"type": "STRING"},
		"name": {"type": "STRING"},
		"date_of_birth": {"type": "STRING"},
		"address": {"type": "STRING"},
		"type": {"type": "STRING", "enum": ["ID_CARD", "PASSPORT"]}
	},
	"required": ["id_number", "name", "type"]
}`)

type ScanService struct {
	Client *GeminiClient

	// ArchiveDir is the uploads/ subdirectory captured frames are copied
	// to; empty disables archiving.
	ArchiveDir string
}

func NewScanService(client *GeminiClient, archiveDir string) *ScanService {
	return &ScanService{Client: client, ArchiveDir: archiveDir}
}

// ScanDocument sends one captured frame to the OCR collaborator and parses
// the structured reply. Failures never touch any stored state; the caller's
// form simply keeps what it had.
func (s *ScanService) ScanDocument(imageBase64 string) (*ScanResult, error) {
	if idx := strings.Index(imageBase64, "base64,"); idx >= 0 {
		imageBase64 = imageBase64[idx+7:]
	}
	if _, err := base64.StdEncoding.DecodeString(imageBase64); err != nil {
		return nil, fmt.Errorf("base64 invalid: %w", err)
	}

	// Archive the captured frame for the scan audit trail; a failure here
	// must not block the scan itself.
	if s.ArchiveDir != "" {
		if _, err := SaveBase64Image(imageBase64, s.ArchiveDir); err != nil {
			log.Printf("warning: failed to archive scanned image: %v", err)
		}
	}

	text, err := s.Client.Generate(geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: imageBase64}},
				{Text: scanPrompt},
			},
		}},
		GenerationConfig: &geminiGenConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   scanResponseSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	var result ScanResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("OCR JSON parse error: %w", err)
	}

	result.DocumentNumber = strings.TrimSpace(result.DocumentNumber)
	result.Name = strings.TrimSpace(result.Name)
	if result.DocumentNumber == "" || result.Name == "" {
		return nil, ErrScanIncomplete
	}
	return &result, nil
}
