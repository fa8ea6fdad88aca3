// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Document is an uploaded file attached to an assistant. The server owns
// processing; Processed flips to true once text extraction and embedding
// have completed.
type Document struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type,omitempty"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Processed  bool      `json:"processed"`
}

// SizeKB returns the file size rounded to whole kilobytes for display.
func (d Document) SizeKB() int64 {
	return (d.FileSize + 512) / 1024
}
