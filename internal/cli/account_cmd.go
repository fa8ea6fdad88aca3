// account_cmd.go - Account deletion command.
//
// Command: delete-account
// Short:   Permanently delete the account and all data
//
// Examples:
//   privategxt delete-account
//   privategxt delete-account --confirm
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
)

// HandleDeleteAccount handles the "delete-account" command.
func HandleDeleteAccount(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.RequireSession(ctx); err != nil {
		return err
	}

	parser := NewArgParser(args.Raw)
	confirmed, err := RequireConfirmation(parser.BoolFlag("confirm"),
		"permanently delete the account, its documents, and its chat history")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := app.Auth.DeleteAccount(ctx); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Println("Account deleted.")
	}
	return nil
}
