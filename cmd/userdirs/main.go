package main

import (
	"fmt"
	"os"

	"github.com/GriffinCanCode/userdirs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "userdirs: %v\n", err)
		os.Exit(1)
	}
}
