package main

import (
	"github.com/gofiber/fiber/v2/log"

	"gogiieum/cmd/config"
	"gogiieum/internal/utils"
)

func main() {
	utils.LoadConfig()

	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
