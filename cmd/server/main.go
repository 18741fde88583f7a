package main

import (
	"os"

	"spark-chat/backend/internal/app"
)

//	@title        Spark Chat API
//	@version      1.0
//	@description  Demo chat backend with a mock response generator.
//	@BasePath     /api/v1

func main() {
	os.Exit(app.Run())
}
