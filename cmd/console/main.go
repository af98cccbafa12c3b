// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/verdantlabs/wastesentry/internal/adapter"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/tui"
	"github.com/verdantlabs/wastesentry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("wastesentry-console")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = run(context.Background(), ui); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("console run error")
	}
}

// run drives the login/session cycle: logging out returns the operator to
// the login screen, quitting exits the program.
func run(ctx context.Context, ui *tui.TUI) error {
	for {
		session, err := ui.LoginFlow(ctx)
		if err != nil {
			return err
		}

		logout, err := ui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

func printBuildInfo() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
