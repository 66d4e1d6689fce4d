package main

import (
	"log"

	"bookstore-api/confs"
	"bookstore-api/db"
	"bookstore-api/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres and run migrations
	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// seed demo data for development
	if cfg.IsDev() {
		if err := db.Seed(database); err != nil {
			log.Printf("Seeding failed: %v", err)
		}
	}

	// run server
	srv := server.NewServer(database, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
