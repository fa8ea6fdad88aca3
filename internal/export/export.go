// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to disk.
// Supports plain-text and JSON formats with metadata headers.
package export

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jeranaias/privategxt-tui/internal/model"
)

// ErrNothingToExport indicates the transcript is empty. Callers surface
// this as an informational note, not a failure.
var ErrNothingToExport = errors.New("nothing to export")

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for transcript exporters.
type Exporter interface {
	// Export converts a transcript to the target format.
	Export(msgs []model.Message) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".txt").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// ForFormat returns the exporter for a format name ("txt" or "json").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "txt":
		return NewTextExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are saved.
	// Default: current working directory
	OutputDir string

	// BaseName is the filename stem; a timestamp and extension follow.
	BaseName string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		BaseName:        "privategxt-chat",
		OpenAfterExport: false,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes a transcript to a file using the given exporter and
// returns the output path. An empty transcript returns ErrNothingToExport
// without creating a file.
func ExportToFile(msgs []model.Message, exporter Exporter, opts *Options) (string, error) {
	if len(msgs) == 0 {
		return "", ErrNothingToExport
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(msgs)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	base := opts.BaseName
	if base == "" {
		base = "privategxt-chat"
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s%s", sanitizeFilename(base), timestamp, exporter.FileExtension())

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(outDir, filename)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal, the file exists either way.
			fmt.Printf("Warning: could not open file: %v\n", err)
		}
	}

	return outputPath, nil
}

// ExportText exports to plain text.
func ExportText(msgs []model.Message, opts *Options) (string, error) {
	return ExportToFile(msgs, NewTextExporter(), opts)
}

// ExportJSON exports to JSON.
func ExportJSON(msgs []model.Message, opts *Options) (string, error) {
	return ExportToFile(msgs, NewJSONExporter(), opts)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in
// filenames.
func sanitizeFilename(s string) string {
	maxLen := 50
	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}

	replacer := map[rune]rune{
		'/':  '-',
		'\\': '-',
		':':  '-',
		'*':  '-',
		'?':  '-',
		'"':  '-',
		'<':  '-',
		'>':  '-',
		'|':  '-',
		' ':  '_',
		'\t': '_',
		'\n': '_',
		'\r': '_',
	}

	result := []rune{}
	for _, r := range s {
		if replacement, found := replacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "privategxt-chat"
	}
	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
