package main

import (
	"os"

	"github.com/tessera-storage/foundation/cmd/logcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
