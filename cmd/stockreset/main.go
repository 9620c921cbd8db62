// Command stockreset sets every product's stock back to the configured
// default. It is meant to be run by an external scheduler (cron or a systemd
// timer); the shop core itself does no scheduling.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/shop"
	"github.com/dmitrijs2005/shopkeeper/internal/shop/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := shop.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Catalog.ResetAllStock(ctx, cfg.DefaultStock); err != nil {
		app.Logger.Error(ctx, "stock reset failed", "error", err.Error())
		os.Exit(1)
	}
}
