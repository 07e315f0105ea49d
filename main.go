package main

import (
	"os"

	"github.com/carry9637/cryptocurrency-dashboard/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}