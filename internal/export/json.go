// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/privategxt-tui/internal/model"
)

// exportFormatLabel identifies the JSON export schema version.
const exportFormatLabel = "PrivateGxT Chat Export v1.0"

// JSONExporter renders a transcript as a self-describing JSON document.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// FileExtension returns ".json".
func (e *JSONExporter) FileExtension() string { return ".json" }

// MimeType returns the JSON MIME type.
func (e *JSONExporter) MimeType() string { return "application/json" }

// jsonDocument is the top-level export shape.
type jsonDocument struct {
	ExportDate   time.Time     `json:"export_date"`
	ExportFormat string        `json:"export_format"`
	MessageCount int           `json:"message_count"`
	Messages     []jsonMessage `json:"messages"`
}

// jsonMessage mirrors the server record, with explicit nulls for absent
// source fields.
type jsonMessage struct {
	ID            int64      `json:"id"`
	Role          model.Role `json:"role"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	SourceType    *string    `json:"source_type"`
	SourceDetails *string    `json:"source_details"`
}

// Export renders the transcript as indented JSON.
func (e *JSONExporter) Export(msgs []model.Message) ([]byte, error) {
	doc := jsonDocument{
		ExportDate:   time.Now().UTC(),
		ExportFormat: exportFormatLabel,
		MessageCount: len(msgs),
		Messages:     make([]jsonMessage, 0, len(msgs)),
	}

	for _, m := range msgs {
		jm := jsonMessage{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
		if m.SourceType != "" {
			st := string(m.SourceType)
			jm.SourceType = &st
		}
		if m.SourceDetails != "" {
			sd := m.SourceDetails
			jm.SourceDetails = &sd
		}
		doc.Messages = append(doc.Messages, jm)
	}

	return json.MarshalIndent(doc, "", "  ")
}
