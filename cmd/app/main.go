package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"burritoops/cmd"
	httpin "burritoops/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)
	if err := app.LoadStores(context.Background()); err != nil {
		log.Fatalf("Failed to load snapshots: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DataDir:            goDotEnvVariable("DATA_DIR"),
		SnapshotAllowEmpty: goDotEnvVariable("SNAPSHOT_ALLOW_EMPTY") == "true",
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateMenuItemCommandHandler(),
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateProgressOrdersCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAvailableDriversQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
