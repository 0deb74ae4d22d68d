// Package version provides application version tracking and update discovery.
package version

import (
	"github.com/anisan-cli/aniserve/constant"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/log"
	"github.com/spf13/viper"
)

// Notify logs a notice if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	version, err := Latest()
	if err != nil {
		log.Debugf("version check failed: %s", err)
		return
	}

	comp, err := Compare(version, constant.Version)
	if err != nil || comp <= 0 {
		return
	}

	log.Infof(
		"new version %s is available (you're on %s): https://github.com/anisan-cli/aniserve/releases/tag/v%s",
		version, constant.Version, version,
	)
}
