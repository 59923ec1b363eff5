// Standalone catalog seeder. The server seeds on boot as well; this exists
// for one-off catalog refreshes against a new database.
package main

import (
	"log"

	"github.com/Blazehunterx/ironmatch-sub000/internal/config"
	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	"github.com/Blazehunterx/ironmatch-sub000/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.Quest{},
		&models.CosmeticItem{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeds.SeedQuests(database.DB)
	seeds.SeedCosmetics(database.DB)

	log.Println("Seeding complete")
}
