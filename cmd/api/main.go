package main

import (
	_ "homeservices_crm/docs"
	"homeservices_crm/internal/adapter/http/routes"
	"homeservices_crm/internal/infrastructure/config"
	"homeservices_crm/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Home Services CRM API
// @version         1.0
// @description     Jobs, measurements, estimate pricing and commissions backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		logger.Get().Fatalf("Failed to load settings: %v", err)
	}
	logger.Configure(settings.LogLevel)

	if err := routes.Run(settings); err != nil {
		logger.Get().Fatalf("Failed to startup the application: %v", err)
	}
}
