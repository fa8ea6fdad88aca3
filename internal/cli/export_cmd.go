// export_cmd.go - Chat transcript export command.
//
// Command: export
// Short:   Export the chat transcript (txt or json)
//
// Examples:
//   privategxt export                      Use the configured format
//   privategxt export --format json
//   privategxt export --out ~/exports     Override the output directory
//   privategxt export --open              Open the file afterwards
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeranaias/privategxt-tui/internal/export"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
)

// HandleExportCommand handles the "export" command.
func HandleExportCommand(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.RequireSession(ctx); err != nil {
		return err
	}

	controller, err := app.ChatController(ctx)
	if err != nil {
		return err
	}
	if err := controller.Load(ctx); err != nil {
		return err
	}

	parser := NewArgParser(args.Raw)
	format := parser.FlagOrDefault("format", app.Config.Export.Format)
	exporter, err := export.ForFormat(format)
	if err != nil {
		return UsageError("%v", err)
	}

	opts := export.DefaultOptions()
	if app.Config.Export.Directory != "" {
		opts.OutputDir = app.Config.Export.Directory
	}
	if out := parser.Flag("out"); out != "" {
		opts.OutputDir = out
	}
	opts.OpenAfterExport = parser.BoolFlag("open")

	path, err := export.ExportToFile(controller.Messages(), exporter, opts)
	if errors.Is(err, export.ErrNothingToExport) {
		fmt.Println(i18n.T("export.empty"))
		return nil
	}
	if err != nil {
		return err
	}

	if args.Quiet {
		fmt.Println(path)
	} else {
		fmt.Println(SuccessStyle.Render(i18n.T("export.done") + " " + path))
	}
	return nil
}
