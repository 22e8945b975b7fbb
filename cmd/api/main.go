package main

import (
	_ "pj_billing/docs"
	"pj_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Project Billing Workflow API
// @version         1.0
// @description     Billing composition wizard, approval queue and budget reconciliation backed by DynamoDB.

// @contact.name   Finance Platform
// @contact.email  finance-platform@example.com

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
