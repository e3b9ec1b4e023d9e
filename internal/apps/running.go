package apps

import (
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/lakshaymaurya-felt/officemole/internal/logging"
)

// terminateGrace is how long QuitRunning waits after asking processes to
// exit before handing the bundle over to the privileged remover anyway.
const terminateGrace = 2 * time.Second

// QuitRunning finds processes whose executable lives inside one of the
// given bundle paths and asks them to terminate. Best effort: a process
// that refuses to exit is left for the removal itself to contend with, and
// is never counted as a removal error.
func QuitRunning(bundlePaths []string) {
	logger := logging.GetLogger("apps")

	procs, err := process.Processes()
	if err != nil {
		logger.Debug().Err(err).Msg("cannot enumerate processes")
		return
	}

	asked := 0
	for _, p := range procs {
		exe, err := p.Exe()
		if err != nil || !InsideBundle(exe, bundlePaths) {
			continue
		}
		name, _ := p.Name()
		if err := p.Terminate(); err != nil {
			logger.Debug().Err(err).Str("process", name).Msg("terminate failed")
			continue
		}
		logger.Debug().Str("process", name).Int32("pid", p.Pid).Msg("asked to quit")
		asked++
	}

	if asked > 0 {
		time.Sleep(terminateGrace)
	}
}

// InsideBundle reports whether exe is a path inside any of the bundle
// directories. Matching is prefix-based on whole path components, so
// "/Applications/Microsoft Word.app.bak/..." does not match the Word bundle.
func InsideBundle(exe string, bundlePaths []string) bool {
	for _, bundle := range bundlePaths {
		if strings.HasPrefix(exe, strings.TrimSuffix(bundle, "/")+"/") {
			return true
		}
	}
	return false
}
