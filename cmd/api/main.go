package main

import (
	_ "malharia_pdv/docs"
	"malharia_pdv/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PDV Malharia API
// @version         1.0
// @description     Order tracker for a garment print shop (orders, line items, announcements and receipts) backed by a sheet-style row store on DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
