// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the client-side projections of the PrivateGxT
// server records: assistants, documents, chat messages, and the locally
// persisted review entries.
//
// The client never holds an authoritative copy of server data. Every type
// in this package is a cache entry refreshed by re-fetching from the API.
package model
