// Package main is the entry point for the aniserve application.
package main

import (
	"github.com/anisan-cli/aniserve/cmd"
	"github.com/anisan-cli/aniserve/config"
	"github.com/anisan-cli/aniserve/internal/cache"
	"github.com/anisan-cli/aniserve/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Reclaim abandoned cache files in the background.
	go cache.CollectGarbage()

	cmd.Execute()
}
