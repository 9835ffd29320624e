package main

import (
	"log"
	"net/http"

	"participant_admin/internal/config"
	"participant_admin/internal/logger"
	"participant_admin/internal/middleware"
	"participant_admin/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg := config.Load()

	// Connect, bound the pool, create the schema
	db := config.InitDB(cfg)

	// Upsert the bootstrap admin credential; missing config is fatal
	config.SeedAdmin(db, cfg)

	r := routes.SetupRouter(db, cfg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.AppPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.AppPort, handler))
}
