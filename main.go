package main

import (
	"context"
	"fmt"
	"os"

	"github.com/compozy/cfgmigrate/cli"
	"github.com/compozy/cfgmigrate/cli/helpers"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !helpers.IsSilent(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
