// chat.go - Interactive chat command handler.
//
// Command: chat
// Short:   Chat with your assistant in the terminal
//
// Examples:
//   privategxt chat                    Start the interactive session
//   privategxt chat --plain            Disable markdown rendering
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /history            Reload and print the full transcript
//   /clear, /c          Delete the entire chat history
//   /export [txt|json]  Export the transcript
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"

	"github.com/jeranaias/privategxt-tui/internal/chat"
	"github.com/jeranaias/privategxt-tui/internal/config"
	"github.com/jeranaias/privategxt-tui/internal/export"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Arrow keys
// navigate history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with secure permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// RENDERING
// =============================================================================

// replyRenderer renders assistant replies, as markdown when enabled.
type replyRenderer struct {
	renderer *glamour.TermRenderer
	showTags bool
}

func newReplyRenderer(cfg *config.Config, plain bool) *replyRenderer {
	r := &replyRenderer{showTags: cfg.UI.ShowSourceTags}
	if plain || !cfg.UI.RenderMarkdown || !IsStdoutTTY() {
		return r
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err == nil {
		r.renderer = renderer
	}
	return r
}

// render prints one assistant reply.
func (r *replyRenderer) render(m model.Message) {
	header := PromptStyle.Render(m.Role.DisplayName())
	if r.showTags {
		if tag := m.SourceType.Tag(); tag != "" {
			header += " " + TagStyle.Render(tag)
		}
	}
	fmt.Println(header)

	if r.renderer != nil {
		if out, err := r.renderer.Render(m.Content); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(m.Content)
	fmt.Println()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand handles the "chat" command.
func HandleChatCommand(args Args) error {
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
	renderer := newReplyRenderer(app.Config, parser.BoolFlag("plain"))

	if !args.Quiet {
		printChatWelcome(app, len(controller.Messages()))
	}

	input := NewChatCLI()
	defer input.Close()

	for {
		line, err := input.ReadInput(PromptStyle.Render("> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// io.EOF on Ctrl+D
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := handleChatSlashCommand(ctx, app, controller, renderer, line)
			if err != nil {
				fmt.Println(ErrorStyle.Render(err.Error()))
			}
			if quit {
				return nil
			}
			continue
		}

		if !args.Quiet {
			fmt.Println(InfoStyle.Render(i18n.T("chat.thinking")))
		}
		if err := controller.Send(ctx, line); err != nil {
			// Empty input and busy sends are silent no-ops by design;
			// anything else the user should see.
			if !errors.Is(err, chat.ErrEmptyMessage) && !errors.Is(err, chat.ErrSendInProgress) {
				fmt.Println(ErrorStyle.Render(i18n.T("chat.send_failed") + " " + err.Error()))
			}
			continue
		}

		msgs := controller.Messages()
		if len(msgs) > 0 {
			if last := msgs[len(msgs)-1]; last.Role == model.RoleAssistant {
				renderer.render(last)
			}
		}
	}
}

// handleChatSlashCommand dispatches an interactive /command. The bool
// result requests exit.
func handleChatSlashCommand(ctx context.Context, app *App, controller *chat.Controller, renderer *replyRenderer, line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/q", "/exit":
		return true, nil

	case "/help", "/h":
		fmt.Println(SectionStyle.Render("Commands"))
		fmt.Println("  /history            Reload and print the transcript")
		fmt.Println("  /clear              Delete the entire chat history")
		fmt.Println("  /export [txt|json]  Export the transcript")
		fmt.Println("  /quit               Exit")
		return false, nil

	case "/history":
		if err := controller.Load(ctx); err != nil {
			return false, err
		}
		for _, m := range controller.Messages() {
			if m.Role == model.RoleAssistant {
				renderer.render(m)
			} else {
				fmt.Println(ValueStyle.Render(m.Role.DisplayName()) + ": " + m.Content)
			}
		}
		return false, nil

	case "/clear", "/c":
		confirmed, err := RequireConfirmation(false, "delete the entire chat history")
		if err != nil || !confirmed {
			return false, err
		}
		switch err := controller.ClearAll(ctx); {
		case errors.Is(err, chat.ErrNothingToClear):
			fmt.Println(i18n.T("chat.nothing_clear"))
		case err != nil:
			return false, err
		default:
			fmt.Println(i18n.T("chat.cleared"))
		}
		return false, nil

	case "/export":
		format := app.Config.Export.Format
		if len(fields) > 1 {
			format = fields[1]
		}
		exporter, err := export.ForFormat(format)
		if err != nil {
			return false, err
		}
		opts := export.DefaultOptions()
		opts.OutputDir = app.Config.Export.Directory
		path, err := export.ExportToFile(controller.Messages(), exporter, opts)
		if errors.Is(err, export.ErrNothingToExport) {
			fmt.Println(i18n.T("export.empty"))
			return false, nil
		}
		if err != nil {
			return false, err
		}
		fmt.Println(SuccessStyle.Render(i18n.T("export.done") + " " + path))
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s (try /help)", fields[0])
	}
}

// printChatWelcome prints the session banner.
func printChatWelcome(app *App, messageCount int) {
	fmt.Println(TitleStyle.Render(i18n.T("app.title")))
	if asst := app.Resolver.Current(); asst != nil {
		fmt.Printf("%s %s\n", LabelStyle.Render("Assistant"), ValueStyle.Render(asst.Name))
	}
	fmt.Printf("%s %d\n", LabelStyle.Render("Messages"), messageCount)
	fmt.Println(InfoStyle.Render("Type /help for commands, Ctrl+D to exit."))
	fmt.Println()
}
