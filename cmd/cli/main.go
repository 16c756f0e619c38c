package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkarpov/picshare/internal/buildinfo"
	"github.com/dkarpov/picshare/internal/client/cli"
	"github.com/dkarpov/picshare/internal/client/config"
	"github.com/dkarpov/picshare/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
