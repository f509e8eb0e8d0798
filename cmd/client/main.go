package main

import (
	"fmt"

	"github.com/ddubrovin/tax-intake-client/internal/adapter"
	"github.com/ddubrovin/tax-intake-client/internal/client"
	"github.com/ddubrovin/tax-intake-client/internal/config"
	"github.com/ddubrovin/tax-intake-client/internal/logger"
	"github.com/ddubrovin/tax-intake-client/internal/profile"
	"github.com/ddubrovin/tax-intake-client/internal/tui"
	"github.com/ddubrovin/tax-intake-client/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("intake-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Portal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	rec := profile.NewReconciler(portalAdapter, validators.NewProfileValidator(), log)

	ui, err := tui.New(rec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(rec, ui, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
