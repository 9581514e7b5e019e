// Command devserver runs an in-memory portfolio API for local development
// of the console client.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/portfolio/internal/buildinfo"
	"github.com/dmitrijs2005/portfolio/internal/devserver"
	"github.com/dmitrijs2005/portfolio/internal/devserver/config"
)

func main() {
	buildinfo.PrintBuildData(log.Writer())

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := devserver.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
