package remove

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLaunchJobPlist(t *testing.T) {
	assert.True(t, IsLaunchJobPlist("/Library/LaunchDaemons/com.microsoft.office.licensingV2.helper.plist"))
	assert.True(t, IsLaunchJobPlist("/Library/LaunchAgents/com.microsoft.update.agent.plist"))
	assert.True(t, IsLaunchJobPlist("/Users/x/Library/LaunchAgents/com.microsoft.OneDriveStandaloneUpdater.plist"))

	assert.False(t, IsLaunchJobPlist("/Library/Preferences/com.microsoft.autoupdate2.plist"))
	assert.False(t, IsLaunchJobPlist("/Library/LaunchDaemons/com.microsoft.helper"))
	assert.False(t, IsLaunchJobPlist("/Library/LaunchDaemons"))
}

func TestLaunchJobTarget(t *testing.T) {
	target, ok := LaunchJobTarget("/Library/LaunchDaemons/com.microsoft.office.licensingV2.helper.plist", 501)
	assert.True(t, ok)
	assert.Equal(t, "system/com.microsoft.office.licensingV2.helper", target)

	target, ok = LaunchJobTarget("/Library/LaunchAgents/com.microsoft.update.agent.plist", 501)
	assert.True(t, ok)
	assert.Equal(t, "gui/501/com.microsoft.update.agent", target)

	_, ok = LaunchJobTarget("/Library/Preferences/com.microsoft.autoupdate2.plist", 501)
	assert.False(t, ok)
}
