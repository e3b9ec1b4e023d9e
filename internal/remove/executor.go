package remove

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/officemole/internal/config"
	"github.com/lakshaymaurya-felt/officemole/internal/core"
	"github.com/lakshaymaurya-felt/officemole/internal/logging"
	"github.com/lakshaymaurya-felt/officemole/internal/pathutil"
)

// removeTimeout is the maximum time to wait for one removal. A bundle can
// be several gigabytes, so this is generous.
const removeTimeout = 120 * time.Second

// Remover recursively deletes one filesystem target. Implementations are
// expected to escalate privilege where needed — several target locations
// sit outside the invoking user's write scope.
type Remover interface {
	Remove(path string) error
}

// ─── Privileged removal ──────────────────────────────────────────────────────

// PrivilegedRemover deletes targets through rm, escalating via sudo unless
// the process already runs as root. Output from rm is discarded; only the
// outcome classification travels upward.
type PrivilegedRemover struct {
	// Timeout overrides removeTimeout when non-zero.
	Timeout time.Duration

	logger zerolog.Logger
}

// NewPrivilegedRemover returns a remover using the default timeout.
func NewPrivilegedRemover() *PrivilegedRemover {
	return &PrivilegedRemover{logger: logging.GetLogger("remover")}
}

// Remove runs `rm -R` on the target. -f is deliberately absent: a target
// that vanished between resolution and deletion must surface as an error,
// not be silently ignored. Paths on the never-delete list are refused
// before any process is spawned.
func (p *PrivilegedRemover) Remove(path string) error {
	clean := filepath.Clean(path)
	if isProtected(clean) {
		return fmt.Errorf("refusing to remove protected path %q", clean)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout())
	defer cancel()

	var cmd *exec.Cmd
	if core.IsRoot() {
		cmd = exec.CommandContext(ctx, "/bin/rm", "-R", "--", clean)
	} else {
		cmd = exec.CommandContext(ctx, "sudo", "/bin/rm", "-R", "--", clean)
	}

	p.logger.Debug().Str("path", clean).Msg("removing")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return classifyExitError(err, output, p.timeout())
	}
	return nil
}

func (p *PrivilegedRemover) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return removeTimeout
}

// isProtected reports whether path is on the never-delete list.
func isProtected(path string) bool {
	for _, never := range config.NeverDeletePaths() {
		if path == filepath.Clean(pathutil.ExpandHome(never)) {
			return true
		}
	}
	return false
}

// ─── Error classification ────────────────────────────────────────────────────

// classifyExitError wraps a removal failure with contextual information.
// The raw rm output rides along for debug logging — it is never shown to
// the operator directly.
func classifyExitError(err error, output []byte, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("removal timed out after %s", timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := truncateOutput(strings.TrimSpace(string(output)), 200)
		if detail != "" {
			return fmt.Errorf("removal failed (exit code %d): %s", exitErr.ExitCode(), detail)
		}
		return fmt.Errorf("removal failed (exit code %d)", exitErr.ExitCode())
	}

	return fmt.Errorf("removal command error: %w", err)
}

// truncateOutput caps s at max bytes, backing up to a valid UTF-8 boundary
// so the result never contains a torn rune.
func truncateOutput(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
