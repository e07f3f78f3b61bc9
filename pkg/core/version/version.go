// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     version
// Description: Central version management for findpay components
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for findpay components
const (
	// Release version
	Platform = "1.0.0"

	// Component versions
	CLI         = "1.0.0"
	FindPayment = "1.0.0"
	Argparse    = "1.0.0"
	Shell       = "1.0.0"
)

// Set at build time with -ldflags "-X github.com/msto63/findpay/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "findpayment":
		return FindPayment
	case "argparse":
		return Argparse
	case "shell":
		return Shell
	default:
		return Platform
	}
}

// String returns a one-line description of the build
func String() string {
	return fmt.Sprintf("findpay %s (commit %s, built %s, %s)", Platform, Commit, BuildDate, runtime.Version())
}
