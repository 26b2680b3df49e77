// file: main.go
package main

import (
	"log"

	"github.com/vedantwankhade123/Roborace/config"
	"github.com/vedantwankhade123/Roborace/database"
	"github.com/vedantwankhade123/Roborace/routes"
	"github.com/vedantwankhade123/Roborace/services"
	"github.com/vedantwankhade123/Roborace/utils"
)

func main() {
	cfg := config.Load()

	utils.InitJWT(cfg.JWTSecret)
	database.Connect(cfg)
	database.InitRedis(cfg)
	services.InitCloudinary(cfg)

	// Schema is managed by migration; enable when bootstrapping a fresh DB.
	// database.MigrateTables()

	r := routes.SetupRouter()

	log.Println("Starting server on " + cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
