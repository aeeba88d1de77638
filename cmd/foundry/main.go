package main

import (
	"fmt"
	"io"
	"os"

	"github.com/foundry-code/console/internal/cli"
	"github.com/foundry-code/console/internal/config"
	"github.com/foundry-code/console/internal/logging"
	"github.com/foundry-code/console/internal/session"
	"github.com/foundry-code/console/internal/shell"
	"github.com/foundry-code/console/internal/ui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to the flag parser when any argument is given and to the
// interactive console otherwise, returning the process exit status.
func run(args []string) int {
	if !interactive(args) {
		if err := cli.Execute(version, args, os.Stdout, os.Stderr); err != nil {
			return 1
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(os.Stderr, fmt.Errorf("load config: %w", err))
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fail(os.Stderr, err)
	}
	defer func() { _ = logger.Sync() }()

	st := session.New(cfg.Status, cfg.Banner)
	if err := shell.Run(st, logger); err != nil {
		return fail(os.Stderr, err)
	}
	return 0
}

func interactive(args []string) bool {
	return len(args) == 0
}

// fail reports err in the error style and returns the failure exit status.
func fail(w io.Writer, err error) int {
	fmt.Fprintln(w, ui.ErrorStyle.Render("Error: "+err.Error()))
	return 1
}
