// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jeranaias/privategxt-tui/internal/model"
	"github.com/jeranaias/privategxt-tui/internal/util"
)

// chatRequest is the body for sending a chat message to an assistant.
type chatRequest struct {
	Content string `json:"content"`
}

// ListAssistants returns the caller's assistants, oldest first.
func (c *Client) ListAssistants(ctx context.Context) ([]model.Assistant, error) {
	var assistants []model.Assistant
	if err := c.get(ctx, "/assistants", &assistants); err != nil {
		return nil, err
	}
	return assistants, nil
}

// CreateAssistant creates a new assistant. The gateway names it
// server-side; the request carries no body.
func (c *Client) CreateAssistant(ctx context.Context) (*model.Assistant, error) {
	var a model.Assistant
	if err := c.post(ctx, "/assistants", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ===== DOCUMENTS =====

// ListDocuments returns all documents attached to an assistant.
func (c *Client) ListDocuments(ctx context.Context, assistantID int64) ([]model.Document, error) {
	var docs []model.Document
	path := "/assistants/" + util.Int64ToString(assistantID) + "/documents"
	if err := c.get(ctx, path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument uploads a file to an assistant as a multipart form.
//
// The gateway indexes the document server-side before answering, so this
// call uses a longer timeout than the rest of the API. The returned record
// carries the server-assigned id and processing state.
func (c *Client) UploadDocument(ctx context.Context, assistantID int64, filename string, content io.Reader) (*model.Document, error) {
	if !c.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	path := "/assistants/" + util.Int64ToString(assistantID) + "/documents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setHeaders(req, true)
	c.logRequest(req)

	uploadClient := *c.httpClient
	uploadClient.Timeout = DefaultUploadTimeout

	start := time.Now()
	resp, err := uploadClient.Do(req)
	req.Header.Del("Authorization")
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, detailOf(body))
		}
		return nil, errorFromResponse(resp.StatusCode, body)
	}

	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &doc, nil
}

// DeleteDocument removes a document from an assistant's knowledge base.
func (c *Client) DeleteDocument(ctx context.Context, assistantID, docID int64) error {
	path := "/assistants/" + util.Int64ToString(assistantID) + "/documents/" + util.Int64ToString(docID)
	return c.del(ctx, path)
}

// ===== MESSAGES / CHAT =====

// ListMessages returns the full chat history for an assistant, oldest
// first. This is the authoritative transcript: the dashboard replaces its
// local view wholesale with the result.
func (c *Client) ListMessages(ctx context.Context, assistantID int64) ([]model.Message, error) {
	var msgs []model.Message
	path := "/assistants/" + util.Int64ToString(assistantID) + "/messages"
	if err := c.get(ctx, path, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage sends a user message to an assistant and returns the
// assistant's reply. The gateway persists both sides of the exchange
// before answering.
func (c *Client) SendMessage(ctx context.Context, assistantID int64, content string) (*model.Message, error) {
	var reply model.Message
	path := "/assistants/" + util.Int64ToString(assistantID) + "/chat"
	if err := c.post(ctx, path, chatRequest{Content: content}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ClearMessages deletes the entire chat history for an assistant.
func (c *Client) ClearMessages(ctx context.Context, assistantID int64) error {
	return c.del(ctx, "/assistants/"+util.Int64ToString(assistantID)+"/messages")
}
