package main

import (
	_ "billed_service/docs"
	"billed_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Billed API
// @version         1.0
// @description     Employee expense-report service: bill submission with receipt images, listing and admin review, backed by DynamoDB/S3.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserEmail
// @in header
// @name X-User-Email
// @description Email of the pre-existing user record (Employee or Admin).

func main() {
	routes.Run()
}
