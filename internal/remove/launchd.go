package remove

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/officemole/internal/logging"
)

// launchctlTimeout bounds each launchctl invocation.
const launchctlTimeout = 10 * time.Second

// IsLaunchJobPlist reports whether path is a launchd job definition — a
// .plist inside a LaunchAgents or LaunchDaemons directory.
func IsLaunchJobPlist(path string) bool {
	if !strings.HasSuffix(path, ".plist") {
		return false
	}
	dir := filepath.Base(filepath.Dir(path))
	return dir == "LaunchAgents" || dir == "LaunchDaemons"
}

// LaunchJobTarget derives the launchctl service target for a job plist:
// "system/<label>" for daemons, "gui/<uid>/<label>" for agents. The label
// is the plist filename by convention. Returns ok=false for paths that are
// not job plists.
func LaunchJobTarget(path string, uid int) (string, bool) {
	if !IsLaunchJobPlist(path) {
		return "", false
	}
	label := strings.TrimSuffix(filepath.Base(path), ".plist")
	if filepath.Base(filepath.Dir(path)) == "LaunchDaemons" {
		return "system/" + label, true
	}
	return fmt.Sprintf("gui/%d/%s", uid, label), true
}

// UnloadLaunchJob asks launchd to boot out the job backed by the given
// plist before the file is deleted. Best effort: a job that is not
// currently loaded is the common case, not an error.
func UnloadLaunchJob(path string) {
	target, ok := LaunchJobTarget(path, os.Getuid())
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), launchctlTimeout)
	defer cancel()

	logger := logging.GetLogger("launchd")
	cmd := exec.CommandContext(ctx, "launchctl", "bootout", target)
	if output, err := cmd.CombinedOutput(); err != nil {
		logger.Debug().Err(err).Str("target", target).
			Str("output", strings.TrimSpace(string(output))).
			Msg("bootout failed (job probably not loaded)")
		return
	}
	logger.Debug().Str("target", target).Msg("job booted out")
}
