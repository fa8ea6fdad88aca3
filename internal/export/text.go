// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/privategxt-tui/internal/model"
)

// timestampLayout matches the short de-DE style the web dashboard used.
const timestampLayout = "02.01.06, 15:04"

// TextExporter renders a transcript as readable plain text.
type TextExporter struct{}

// NewTextExporter creates a plain-text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// FileExtension returns ".txt".
func (e *TextExporter) FileExtension() string { return ".txt" }

// MimeType returns the plain-text MIME type.
func (e *TextExporter) MimeType() string { return "text/plain" }

// Export renders the transcript with a metadata header, one block per
// message, separated by rules.
func (e *TextExporter) Export(msgs []model.Message) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "PrivateGxT Chat Export\n")
	fmt.Fprintf(&b, "Exportiert am: %s\n", time.Now().Format(timestampLayout))
	fmt.Fprintf(&b, "Anzahl Nachrichten: %d\n\n", len(msgs))
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		role := "Du"
		if m.Role == model.RoleAssistant {
			role = "PrivateGxT AI"
		}
		header := fmt.Sprintf("[%s] %s", m.CreatedAt.Format(timestampLayout), role)
		if tag := m.SourceType.Tag(); tag != "" {
			header += " " + tag
		}
		blocks = append(blocks, header+"\n"+m.Content+"\n")
	}
	b.WriteString(strings.Join(blocks, "\n---\n\n"))

	return []byte(b.String()), nil
}
