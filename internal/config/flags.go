package config

import (
	"github.com/MKhiriev/xagcl/models"
)

// Positional switches recognised on the command line. They take no values;
// only their presence matters.
const (
	SwitchPlus     = "plus"
	SwitchOnDemand = "on_demand"
	SwitchTest     = "test"
)

// ParseSwitches resolves the account selection from the program arguments
// (without the program name). Unknown arguments are ignored.
//
// Switches are evaluated in fixed order: the standard type is the default,
// "plus" replaces it, and "on_demand" is evaluated last, so it wins when both
// are given.
func ParseSwitches(args []string) models.Selection {
	present := make(map[string]bool, len(args))
	for _, arg := range args {
		present[arg] = true
	}

	selection := models.Selection{
		Type:     models.AccountTypeStandard,
		TestMode: present[SwitchTest],
	}

	if present[SwitchPlus] {
		selection.Type = models.AccountTypePlus
	}

	if present[SwitchOnDemand] {
		selection.Type = models.AccountTypeOnDemand
	}

	return selection
}
