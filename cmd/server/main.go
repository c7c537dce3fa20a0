package main

import (
	"context"
	"log"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
