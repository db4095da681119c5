// main.go
package main

import (
	"context"
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/migrations"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		applied, err := migrations.Apply(context.Background(), db.Pool())
		if err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err), zap.Strings("applied", applied))
		}
		logger.Info("Migrations applied", zap.Strings("applied", applied))
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, db, config, logger)

	if err := cmd.APIServer(app.Router, *config, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
