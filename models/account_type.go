// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountType identifies the account tier requested from the generator.
// The underlying string is the value sent in the "type" query parameter.
type AccountType string

const (
	// AccountTypeStandard is the default tier.
	AccountTypeStandard AccountType = "xbox"
	// AccountTypePlus is the xag+ tier.
	AccountTypePlus AccountType = "xbox_plus"
	// AccountTypeOnDemand is generated on request rather than taken from stock.
	AccountTypeOnDemand AccountType = "xbox_demand"
)

// String returns the wire value of the account type.
func (t AccountType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tiers.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeStandard, AccountTypePlus, AccountTypeOnDemand:
		return true
	default:
		return false
	}
}

// Selection is what the operator asked for on the command line. It is
// resolved once at startup and never changes during a run.
type Selection struct {
	Type     AccountType
	TestMode bool
}
