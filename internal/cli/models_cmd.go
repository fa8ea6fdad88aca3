// models_cmd.go - Admin model management commands.
//
// Command: models
// Short:   Admin: list or switch the active model
//
// Examples:
//   privategxt models                  List available models
//   privategxt models current          Show the active model
//   privategxt models set llama3.1     Switch the active model
//
// All subcommands require an admin account on the gateway.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/privategxt-tui/internal/admin"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
)

// HandleModelsCommand handles the "models" command and its subcommands.
func HandleModelsCommand(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.RequireSession(ctx); err != nil {
		return err
	}

	svc := admin.NewService(app.Client)
	parser := NewArgParser(args.Raw)
	switch parser.Subcommand() {
	case "", "list", "ls":
		return modelsList(ctx, svc, args)
	case "current":
		return modelsCurrent(ctx, svc, args)
	case "set", "switch":
		return modelsSet(ctx, svc, parser, args)
	default:
		return UsageError("unknown models subcommand: %s (expected list, current, or set)", parser.Subcommand())
	}
}

// modelsList prints the available models.
func modelsList(ctx context.Context, svc *admin.Service, args Args) error {
	models, err := svc.Models(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(models)
	}

	fmt.Println(SectionStyle.Render(i18n.T("admin.title")))
	for _, m := range models {
		marker := "  "
		if m.Loaded {
			marker = SuccessStyle.Render("* ")
		}
		name := m.DisplayName
		if name == "" {
			name = m.Name
		}
		fmt.Printf("%s%s (%s)\n", marker, ValueStyle.Render(name), m.Name)
	}
	return nil
}

// modelsCurrent prints the active model.
func modelsCurrent(ctx context.Context, svc *admin.Service, args Args) error {
	current, err := svc.CurrentModel(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"current": current})
	}
	fmt.Printf("%s %s\n", LabelStyle.Render(i18n.T("admin.current_model")), ValueStyle.Render(current))
	return nil
}

// modelsSet switches the active model.
func modelsSet(ctx context.Context, svc *admin.Service, parser *ArgParser, args Args) error {
	name := parser.Positional(1)
	if name == "" {
		return UsageError("usage: privategxt models set <name>")
	}
	if err := svc.SwitchModel(ctx, name); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Println(SuccessStyle.Render(i18n.T("admin.model_switched") + " " + name))
	}
	return nil
}
