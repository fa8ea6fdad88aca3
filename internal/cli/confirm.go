// confirm.go - Unified confirmation handling for destructive commands.
//
// One pattern everywhere:
//  1. --confirm flag present: proceed without prompting
//  2. stdin is not a TTY: require --confirm (cannot prompt)
//  3. otherwise: interactive yes/no prompt
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RequireConfirmation checks if the user has confirmed a destructive
// action. Returns true only on an explicit yes.
func RequireConfirmation(confirmFlag bool, action string) (bool, error) {
	if confirmFlag {
		return true, nil
	}
	if !IsTTY() {
		return false, fmt.Errorf("refusing to %s without --confirm (stdin is not a terminal)", action)
	}

	fmt.Printf("%s This will %s. Continue? [y/N] ",
		WarningStyle.Render("Warning:"), action)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
