package main

import (
	"log"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	adminPassword := config.GetEnv("ADMIN_PASSWORD", "password")
	if err := database.Seed(db, adminPassword); err != nil {
		log.Fatal("Seed failed:", err)
	}
}
