package initializers

import (
	"log"
	"os"

	"camerahive/client"
)

// API is the shared client for the remote catalog API. Every durable
// record this service touches lives behind it.
var API *client.Client

func ConnectToCatalog() {
	baseURL := os.Getenv("CATALOG_API_URL")
	if baseURL == "" {
		log.Fatal("CATALOG_API_URL is not set")
	}
	API = client.New(baseURL)
	log.Println("Catalog API client configured for", baseURL)
}
