package remove

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/officemole/internal/core"
	"github.com/lakshaymaurya-felt/officemole/internal/logging"
)

// pkgutilTimeout bounds each pkgutil invocation.
const pkgutilTimeout = 30 * time.Second

// receiptPackagePattern matches Microsoft installer package identifiers
// in pkgutil's anchored-regex syntax.
const receiptPackagePattern = `com\.microsoft\..*`

// ForgetReceipts asks the package database to forget every Microsoft
// installer receipt, so the system no longer believes Office is installed.
// Returns the number of packages forgotten. Best effort throughout:
// failures are logged at debug and never counted against the removal tally.
func ForgetReceipts() int {
	logger := logging.GetLogger("receipts")

	ctx, cancel := context.WithTimeout(context.Background(), pkgutilTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pkgutil", "--pkgs="+receiptPackagePattern).Output()
	if err != nil {
		// pkgutil exits non-zero when nothing matches.
		logger.Debug().Err(err).Msg("no matching receipts")
		return 0
	}

	forgotten := 0
	for _, pkg := range strings.Fields(string(out)) {
		if forgetPackage(pkg) {
			forgotten++
			logger.Debug().Str("pkg", pkg).Msg("receipt forgotten")
		} else {
			logger.Debug().Str("pkg", pkg).Msg("failed to forget receipt")
		}
	}
	return forgotten
}

func forgetPackage(pkg string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), pkgutilTimeout)
	defer cancel()

	var cmd *exec.Cmd
	if core.IsRoot() {
		cmd = exec.CommandContext(ctx, "pkgutil", "--forget", pkg)
	} else {
		cmd = exec.CommandContext(ctx, "sudo", "pkgutil", "--forget", pkg)
	}
	return cmd.Run() == nil
}
