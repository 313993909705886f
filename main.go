// Command nextairing prints the next episode to air for each series given on the command line.
package main

import (
	"github.com/nextairing/nextairing/cmd"
	"github.com/nextairing/nextairing/config"
	"github.com/nextairing/nextairing/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
