package main

import (
	"log"

	_ "github.com/gourishchouhan/strive/docs" // Import generated docs
	"github.com/gourishchouhan/strive/internal/app"
)

// @title Strive API
// @version 1.0
// @description Habit and challenge tracking backend
// @description Provides REST API for tasks, challenges, dashboard statistics and achievements

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
