package core

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// MacOSVersionString returns a human-readable macOS version string.
// Examples: "macOS 14.6.1 (Build 23G93)", "macOS 15.1 (Build 24B83)"
// Falls back to plain "macOS" when sw_vers is unavailable.
func MacOSVersionString() string {
	product := swVers("-productVersion")
	if product == "" {
		return "macOS"
	}
	build := swVers("-buildVersion")
	if build == "" {
		return "macOS " + product
	}
	return fmt.Sprintf("macOS %s (Build %s)", product, build)
}

// swVers queries one field from sw_vers. Returns an empty string on any
// failure so callers can degrade instead of erroring.
func swVers(flag string) string {
	out, err := exec.Command("/usr/bin/sw_vers", flag).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// IsRoot reports whether the process already runs with effective uid 0,
// in which case privilege escalation is a no-op.
func IsRoot() bool {
	return os.Geteuid() == 0
}
