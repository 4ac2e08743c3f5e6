package main

import (
	"context"
	"os"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
