package main

import (
	"context"
	"log"

	"github.com/mkravets/tasklist/internal/server"
	"github.com/mkravets/tasklist/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
