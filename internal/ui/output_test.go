package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersPreserveText(t *testing.T) {
	ForcePlain()

	for name, fn := range map[string]func(string) string{
		"Banner":  Banner,
		"Accent":  Accent,
		"OK":      OK,
		"Err":     Err,
		"Success": Success,
		"Failure": Failure,
		"Warn":    Warn,
		"Muted":   Muted,
	} {
		assert.Equal(t, "Removed: /tmp/x", fn("Removed: /tmp/x"), name)
	}
}
