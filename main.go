// main is the entry point for the oddhash CLI.
package main

import (
	"github.com/oddhash/oddhash/cmd"
	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/internal/scanlog"
)

func main() {
	err := cmd.Execute()

	// Close persistence stores before reporting any failure.
	scanlog.CloseStores()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
