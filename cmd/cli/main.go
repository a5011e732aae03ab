package main

import (
	"context"
	"log"
	"os"

	"github.com/resumatch/resumatch-cli/internal/buildinfo"
	"github.com/resumatch/resumatch-cli/internal/client/cli"
	"github.com/resumatch/resumatch-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
