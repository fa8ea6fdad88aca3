// PrivateGxT dashboard - chat with your documents, privately.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/privategxt-tui/internal/cli"
	"github.com/jeranaias/privategxt-tui/internal/config"
	"github.com/jeranaias/privategxt-tui/internal/ui/dashboard"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runDashboard(args)
	case cli.CmdLogin:
		err = cli.HandleLogin(args)
	case cli.CmdRegister:
		err = cli.HandleRegister(args)
	case cli.CmdMagicLink:
		err = cli.HandleMagicLink(args)
	case cli.CmdLogout:
		err = cli.HandleLogout(args)
	case cli.CmdWhoami:
		err = cli.HandleWhoami(args)
	case cli.CmdChat:
		err = cli.HandleChatCommand(args)
	case cli.CmdDocs:
		err = cli.HandleDocsCommand(args)
	case cli.CmdExport:
		err = cli.HandleExportCommand(args)
	case cli.CmdReview:
		err = cli.HandleReviewCommand(args)
	case cli.CmdModels:
		err = cli.HandleModelsCommand(args)
	case cli.CmdDeleteAccount:
		err = cli.HandleDeleteAccount(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}

	if err != nil {
		os.Exit(cli.ReportError(err))
	}
}

// runDashboard opens the full-screen dashboard.
func runDashboard(args cli.Args) error {
	app, err := cli.NewApp(args)
	if err != nil {
		return err
	}

	model := dashboard.New(app.Config, app.Client, app.Auth, app.Resolver)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload the dashboard config when the file changes on disk.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if args.ConfigPath == "" {
		if path, err := config.ConfigPathTOML(); err == nil {
			go func() {
				err := config.Watch(watchCtx, path, nil)
				if err != nil && !errors.Is(err, context.Canceled) {
					fmt.Fprintf(os.Stderr, "config watch: %v\n", err)
				}
			}()
		}
	}

	_, err = program.Run()
	return err
}
