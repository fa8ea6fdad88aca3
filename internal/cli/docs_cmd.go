// docs_cmd.go - Document management commands.
//
// Command: docs
// Short:   Manage documents (list, upload, delete)
//
// Examples:
//   privategxt docs                    List documents
//   privategxt docs list
//   privategxt docs upload notes.pdf   Upload a file
//   privategxt docs delete 42          Delete document 42
//   privategxt docs delete 42 --confirm
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/privategxt-tui/internal/documents"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
	"github.com/jeranaias/privategxt-tui/internal/model"
	"github.com/jeranaias/privategxt-tui/internal/util"
)

// HandleDocsCommand handles the "docs" command and its subcommands.
func HandleDocsCommand(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.RequireSession(ctx); err != nil {
		return err
	}

	asst, err := app.Resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("could not resolve assistant: %w", err)
	}
	mgr := documents.NewManager(app.Client, asst.ID)

	parser := NewArgParser(args.Raw)
	switch parser.Subcommand() {
	case "", "list", "ls":
		return docsList(ctx, mgr, args)
	case "upload", "add":
		return docsUpload(ctx, mgr, parser, args)
	case "delete", "rm":
		return docsDelete(ctx, mgr, parser, args)
	default:
		return UsageError("unknown docs subcommand: %s (expected list, upload, or delete)", parser.Subcommand())
	}
}

// docsList prints the document list.
func docsList(ctx context.Context, mgr *documents.Manager, args Args) error {
	if err := mgr.Refresh(ctx); err != nil {
		return err
	}
	docs := mgr.Documents()

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Println(i18n.T("docs.empty"))
		return nil
	}

	fmt.Println(SectionStyle.Render(i18n.T("docs.title")))
	for _, d := range docs {
		printDocumentRow(d)
	}
	return nil
}

// printDocumentRow prints one document line: id, name, size, status.
func printDocumentRow(d model.Document) {
	status := ""
	if !d.Processed {
		status = " " + WarningStyle.Render(i18n.T("docs.processing"))
	}
	fmt.Printf("  %s %s (%d KB)%s\n",
		LabelStyle.Render("#"+util.Int64ToString(d.ID)),
		ValueStyle.Render(d.Filename),
		d.SizeKB(),
		status)
}

// docsUpload uploads a local file.
func docsUpload(ctx context.Context, mgr *documents.Manager, parser *ArgParser, args Args) error {
	path := parser.Positional(1)
	if path == "" {
		return UsageError("usage: privategxt docs upload <file>")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	if !args.Quiet {
		fmt.Println(i18n.T("docs.uploading"))
	}
	if err := mgr.Upload(ctx, filepath.Base(path), f); err != nil {
		return fmt.Errorf("%s: %w", i18n.T("docs.upload_failed"), err)
	}

	if !args.Quiet {
		fmt.Println(SuccessStyle.Render("Uploaded " + filepath.Base(path)))
	}
	return nil
}

// docsDelete deletes a document by id.
func docsDelete(ctx context.Context, mgr *documents.Manager, parser *ArgParser, args Args) error {
	id, ok := parser.PositionalInt64(1)
	if !ok {
		return UsageError("usage: privategxt docs delete <id>")
	}

	confirmed, err := RequireConfirmation(parser.BoolFlag("confirm"), fmt.Sprintf("delete document %d", id))
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := mgr.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", i18n.T("docs.delete_failed"), err)
	}
	if !args.Quiet {
		fmt.Printf("Deleted document %d\n", id)
	}
	return nil
}
