// auth_cmd.go - Sign-in, sign-out, and account commands.
//
// Command: login
// Short:   Sign in with email and password
//
// Command: register
// Short:   Create an account
//
// Command: magic-link
// Short:   Request or verify an email sign-in link
//
// Command: logout
// Short:   Sign out and forget the stored session
//
// Command: whoami
// Short:   Show the signed-in account
//
// Examples:
//   privategxt login
//   privategxt login --email a@b.example
//   privategxt magic-link a@b.example          Request the email
//   privategxt magic-link --verify TOKEN       Complete the flow
//   privategxt whoami
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
)

// promptEmail reads an email address, preferring the --email flag.
func promptEmail(parser *ArgParser) (string, error) {
	if email := parser.Flag("email"); email != "" {
		return email, nil
	}
	if !IsTTY() {
		return "", UsageError("--email is required when stdin is not a terminal")
	}
	fmt.Print(PromptStyle.Render(i18n.T("login.email") + ": "))
	reader := bufio.NewReader(os.Stdin)
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(email), nil
}

// promptPassword reads a password without echoing it.
func promptPassword() (string, error) {
	if !IsTTY() {
		return "", UsageError("password login needs an interactive terminal")
	}
	fmt.Print(PromptStyle.Render(i18n.T("login.password") + ": "))
	password, err := ReadPassword()
	fmt.Println()
	if err != nil {
		return "", err
	}
	return password, nil
}

// HandleLogin handles the "login" command.
func HandleLogin(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	parser := NewArgParser(args.Raw)

	email, err := promptEmail(parser)
	if err != nil {
		return err
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Auth.Login(ctx, email, password); err != nil {
		return fmt.Errorf("%s: %w", i18n.T("login.failed"), err)
	}

	if !args.Quiet {
		fmt.Println(SuccessStyle.Render("Signed in as " + email))
	}
	return nil
}

// HandleRegister handles the "register" command.
func HandleRegister(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	parser := NewArgParser(args.Raw)

	email, err := promptEmail(parser)
	if err != nil {
		return err
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Auth.Register(ctx, email, password); err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Println(SuccessStyle.Render("Account created. Signed in as " + email))
	}
	return nil
}

// HandleMagicLink handles the "magic-link" command: requesting the email
// or, with --verify, completing the flow with the emailed token.
func HandleMagicLink(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	parser := NewArgParser(args.Raw)
	ctx := context.Background()

	if token := parser.Flag("verify"); token != "" {
		if err := app.Auth.VerifyMagicLink(ctx, token); err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Println(SuccessStyle.Render("Signed in."))
		}
		return nil
	}

	email := parser.Positional(0)
	if email == "" {
		email, err = promptEmail(parser)
		if err != nil {
			return err
		}
	}
	if err := app.Auth.RequestMagicLink(ctx, email); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Println(i18n.T("login.magic_sent"))
	}
	return nil
}

// HandleLogout handles the "logout" command.
func HandleLogout(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	if err := app.Auth.Logout(); err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Println("Signed out.")
	}
	return nil
}

// HandleWhoami handles the "whoami" command.
func HandleWhoami(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if app.Auth.Bootstrap(ctx) != auth.StateAuthenticated {
		fmt.Println("Not signed in.")
		return nil
	}

	user := app.Auth.User()
	fmt.Println(TitleStyle.Render("PrivateGxT"))
	if user != nil {
		fmt.Printf("%s %s\n", LabelStyle.Render("Account"), ValueStyle.Render(user.Email))
	}
	fmt.Printf("%s %s\n", LabelStyle.Render("Gateway"), ValueStyle.Render(app.Config.Server.URL))
	fmt.Printf("%s %s\n", LabelStyle.Render("Locale"), ValueStyle.Render(i18n.AcceptLanguage()))

	if asst, err := app.Resolver.Resolve(ctx); err == nil {
		fmt.Printf("%s %s\n", LabelStyle.Render("Assistant"), ValueStyle.Render(asst.Name))
	}
	return nil
}
