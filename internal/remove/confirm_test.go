package remove

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	affirmative := []string{
		"y\n", "Y\n", "yes\n", "YES\n", "Yes\n", "yEs\n",
		"  y  \n", "\tyes\n",
		"y", // EOF without trailing newline still counts
	}
	for _, input := range affirmative {
		assert.True(t, Confirm(strings.NewReader(input)), "input %q", input)
	}

	decline := []string{
		"n\n", "no\n", "\n", "maybe\n", "yeah\n", "y n\n", "yess\n",
		"", // immediate EOF
	}
	for _, input := range decline {
		assert.False(t, Confirm(strings.NewReader(input)), "input %q", input)
	}
}

func TestConfirmReadsOnlyOneLine(t *testing.T) {
	in := strings.NewReader("no\ny\n")
	assert.False(t, Confirm(in))
}
