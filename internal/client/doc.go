// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the xag client application runtime.
//
// One [App.Run] performs a single acquisition: load the token, fetch stock,
// request an account, report and persist the outcome, then hold the console
// open until the idle timeout or an interrupt.
package client
