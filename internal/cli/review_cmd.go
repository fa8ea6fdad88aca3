// review_cmd.go - Local feedback commands.
//
// Command: review
// Short:   Leave or list feedback (stored locally)
//
// Examples:
//   privategxt review add --stars 5 Sehr gut
//   privategxt review list
//   privategxt review summary
//
// Reviews never leave the machine; they live in a local SQLite database.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/privategxt-tui/internal/reviews"
)

// reviewTimeLayout formats review timestamps for list output.
const reviewTimeLayout = "2006-01-02 15:04"

// HandleReviewCommand handles the "review" command and its subcommands.
func HandleReviewCommand(args Args) error {
	app, err := NewApp(args)
	if err != nil {
		return err
	}

	dbPath, err := app.Config.ReviewsDBPath()
	if err != nil {
		return err
	}
	store, err := reviews.Open(dbPath)
	if err != nil {
		return fmt.Errorf("could not open review store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	parser := NewArgParser(args.Raw)
	switch parser.Subcommand() {
	case "add":
		return reviewAdd(ctx, store, parser, args)
	case "", "list", "ls":
		return reviewList(ctx, store, args)
	case "summary":
		return reviewSummary(ctx, store, args)
	default:
		return UsageError("unknown review subcommand: %s (expected add, list, or summary)", parser.Subcommand())
	}
}

// reviewAdd stores a new review.
func reviewAdd(ctx context.Context, store *reviews.Store, parser *ArgParser, args Args) error {
	stars, err := parser.FlagInt("stars")
	if err != nil {
		return UsageError("usage: privategxt review add --stars N [comment]")
	}
	comment := strings.TrimSpace(parser.Rest())

	review, err := store.Add(ctx, stars, comment)
	if err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Println(SuccessStyle.Render(fmt.Sprintf("Saved review #%d (%s)", review.ID, starBar(review.Stars))))
	}
	return nil
}

// reviewList prints all stored reviews, newest first.
func reviewList(ctx context.Context, store *reviews.Store, args Args) error {
	list, err := store.List(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(list)
	}

	if len(list) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}
	for _, r := range list {
		line := fmt.Sprintf("  %s  %s", starBar(r.Stars), r.CreatedAt.Format(reviewTimeLayout))
		if r.Comment != "" {
			line += "  " + ValueStyle.Render(r.Comment)
		}
		fmt.Println(line)
	}
	return nil
}

// reviewSummary prints the count and star average.
func reviewSummary(ctx context.Context, store *reviews.Store, args Args) error {
	sum, err := store.Summarize(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"count":   sum.Count,
			"average": sum.Average,
		})
	}

	fmt.Printf("%s %d\n", LabelStyle.Render("Reviews"), sum.Count)
	if sum.Count > 0 {
		fmt.Printf("%s %.1f\n", LabelStyle.Render("Average"), sum.Average)
	}
	return nil
}

// starBar renders stars as a fixed-width bar, e.g. "★★★☆☆".
func starBar(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}
