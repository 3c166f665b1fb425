// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StockSnapshot is a point-in-time view of how many accounts the generator
// can currently hand out. It is fetched fresh on every run.
type StockSnapshot struct {
	// Total is the number of accounts of all tiers.
	Total int
	// Plus is the number of xag+ accounts.
	Plus int
	// Normal is the number of standard accounts.
	Normal int
}
