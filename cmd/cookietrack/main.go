package main

import (
	"os"

	"github.com/tyleryates/cookie-tracker-sub004/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
