package remove

import (
	"bufio"
	"io"
	"strings"
)

// Confirm reads one line from in and interprets it as the operator's
// decision. Only "y" and "yes" (any case) affirm; anything else — empty
// input, an unrecognized answer, or a read error — declines. This is a
// one-shot decision: there is no re-prompt loop.
func Confirm(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
