// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Review is a locally persisted rating entry for the feedback widget.
// Reviews never leave the machine; there is no server interaction.
type Review struct {
	ID        int64     `json:"id"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
