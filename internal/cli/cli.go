// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for the PrivateGxT dashboard.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/assistant"
	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/chat"
	"github.com/jeranaias/privategxt-tui/internal/config"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
)

// Version information (can be overridden at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdRegister
	CmdMagicLink
	CmdLogout
	CmdWhoami
	CmdChat
	CmdDocs
	CmdExport
	CmdReview
	CmdModels
	CmdDeleteAccount
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	JSON       bool
	ServerURL  string
	ConfigPath string

	// Remaining arguments for the command's own parser.
	Raw []string
}

const usageText = `privategxt - chat with your documents, privately

USAGE:
  privategxt [command] [flags]

COMMANDS:
  (none)              Open the dashboard TUI
  login               Sign in with email and password
  register            Create an account
  magic-link          Request or verify an email sign-in link
  logout              Sign out and forget the stored session
  whoami              Show the signed-in account
  chat                Chat with your assistant in the terminal
  docs                Manage documents (list, upload, delete)
  export              Export the chat transcript (txt or json)
  review              Leave or list feedback (stored locally)
  models              Admin: list or switch the active model
  delete-account      Permanently delete the account and all data
  version             Show version information
  help                Show this help

GLOBAL FLAGS:
  --server URL        Gateway URL (overrides config)
  --config PATH       Use a specific config file
  -q, --quiet         Minimal output
  --json              Machine-readable output where supported

EXAMPLES:
  privategxt                         Open the dashboard
  privategxt login                   Sign in interactively
  privategxt magic-link a@b.example  Request a sign-in email
  privategxt docs upload notes.pdf   Add a document
  privategxt chat                    Chat in the terminal
  privategxt export --format json    Export the transcript

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("privategxt version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	raw := os.Args[1:]

	var parsed Args
	remaining := make([]string, 0, len(raw))
	i := 0
	for i < len(raw) {
		switch raw[i] {
		case "-q", "--quiet":
			parsed.Quiet = true
			i++
		case "--json":
			parsed.JSON = true
			i++
		case "--server":
			if i+1 < len(raw) {
				parsed.ServerURL = raw[i+1]
				i += 2
			} else {
				i++
			}
		case "--config":
			if i+1 < len(raw) {
				parsed.ConfigPath = raw[i+1]
				i += 2
			} else {
				i++
			}
		default:
			remaining = append(remaining, raw[i])
			i++
		}
	}

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	parsed.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsed
	case "login":
		return CmdLogin, parsed
	case "register", "signup":
		return CmdRegister, parsed
	case "magic-link", "magiclink":
		return CmdMagicLink, parsed
	case "logout":
		return CmdLogout, parsed
	case "whoami", "status", "s":
		return CmdWhoami, parsed
	case "chat":
		return CmdChat, parsed
	case "docs", "documents", "doc":
		return CmdDocs, parsed
	case "export":
		return CmdExport, parsed
	case "review", "reviews", "feedback":
		return CmdReview, parsed
	case "models", "model":
		return CmdModels, parsed
	case "delete-account":
		return CmdDeleteAccount, parsed
	case "version", "-v", "--version":
		return CmdVersion, parsed
	case "help", "-h", "--help":
		return CmdHelp, parsed
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsed
	}
}

// =============================================================================
// APP WIRING
// =============================================================================

// App bundles the services every command needs.
type App struct {
	Config   *config.Config
	Client   *api.Client
	Auth     *auth.Manager
	Resolver *assistant.Resolver
}

// NewApp loads configuration and wires the gateway client, session
// manager, and assistant resolver.
func NewApp(args Args) (*App, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if args.ServerURL != "" {
		cfg.Server.URL = args.ServerURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	config.SetGlobal(cfg)

	locale := i18n.Detect(cfg.Server.Locale)
	i18n.SetLocale(locale)

	client := api.NewClient(cfg.Server.URL).WithLocale(i18n.AcceptLanguage())

	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	mgr := auth.NewManager(client, auth.NewStore(tokenPath))

	return &App{
		Config:   cfg,
		Client:   client,
		Auth:     mgr,
		Resolver: assistant.NewResolver(client),
	}, nil
}

// RequireSession bootstraps the session and fails when not signed in.
func (a *App) RequireSession(ctx context.Context) error {
	if a.Auth.Bootstrap(ctx) != auth.StateAuthenticated {
		return errors.New("not signed in. Run: privategxt login")
	}
	return nil
}

// ChatController resolves the assistant and returns a controller for it.
func (a *App) ChatController(ctx context.Context) (*chat.Controller, error) {
	asst, err := a.Resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not resolve assistant: %w", err)
	}
	return chat.NewController(a.Client, asst.ID), nil
}
