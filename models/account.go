// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// GeneratedAccount holds the credentials returned by a successful
// generation request.
type GeneratedAccount struct {
	Email    string
	Password string
	Username string
	Type     AccountType
	// TestMode mirrors the test_mode_enabled flag echoed by the generator.
	TestMode bool
}

// Line formats the account the way it is stored in the accounts file,
// without the trailing newline.
func (a GeneratedAccount) Line() string {
	return fmt.Sprintf("%s | %s | %s", a.Email, a.Password, a.Username)
}

// Rejection is a service-level refusal carried in an otherwise well-formed
// response body (for example "out of stock").
type Rejection struct {
	Message string
}

// GenerationResult is the decoded outcome of a generation request.
// Exactly one of Generated and Rejected is non-nil.
type GenerationResult struct {
	Generated *GeneratedAccount
	Rejected  *Rejection
}

// Succeeded reports whether the generator produced an account.
func (r GenerationResult) Succeeded() bool {
	return r.Generated != nil && r.Rejected == nil
}

// NewGenerated wraps a successful outcome.
func NewGenerated(account GeneratedAccount) GenerationResult {
	return GenerationResult{Generated: &account}
}

// NewRejected wraps a refusal.
func NewRejected(message string) GenerationResult {
	return GenerationResult{Rejected: &Rejection{Message: message}}
}
