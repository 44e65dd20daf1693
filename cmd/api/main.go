package main

import (
	_ "compras_xpto/docs"
	"compras_xpto/internal/adapter/http/routes"
	"compras_xpto/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Compras API
// @version         1.0
// @description     Purchase requisition lifecycle and procurement analytics backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-User-ID
// @description Caller id forwarded by the gateway. Staff routes also need X-User-Role: staff.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	config.ConfigureLogging(cfg)

	routes.Run(cfg)
}
