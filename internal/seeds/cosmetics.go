package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// SeedCosmetics loads the cosmetic catalog: profile frames and color
// treatments, XP priced and optionally rank gated.
func SeedCosmetics(db *gorm.DB) {
	log.Println("🎨 Seeding cosmetic catalog...")

	items := []models.CosmeticItem{
		// Frames
		{ID: "frame-steel", Name: "Steel Frame", Category: models.CosmeticCategoryFrame, XPCost: 50, Preview: "border-steel"},
		{ID: "frame-bronze", Name: "Bronze Frame", Category: models.CosmeticCategoryFrame, XPCost: 100, Preview: "border-bronze"},
		{ID: "frame-chalk", Name: "Chalk Dust Frame", Category: models.CosmeticCategoryFrame, XPCost: 150, Preview: "border-chalk"},
		{ID: "frame-contender", Name: "Contender Frame", Category: models.CosmeticCategoryFrame, XPCost: 200, MinRank: "Contender", Preview: "border-contender"},
		{ID: "frame-gilded", Name: "Gilded Frame", Category: models.CosmeticCategoryFrame, XPCost: 400, MinRank: "Athlete", Preview: "border-gilded"},
		{ID: "frame-warlord", Name: "Warlord Frame", Category: models.CosmeticCategoryFrame, XPCost: 800, MinRank: "Warrior", Preview: "border-warlord"},
		{ID: "frame-mythic", Name: "Mythic Frame", Category: models.CosmeticCategoryFrame, XPCost: 1500, MinRank: "Legend", Preview: "border-mythic"},

		// Color treatments
		{ID: "color-slate", Name: "Slate", Category: models.CosmeticCategoryColor, XPCost: 30, Preview: "#64748b"},
		{ID: "color-ember", Name: "Ember", Category: models.CosmeticCategoryColor, XPCost: 60, Preview: "#f97316"},
		{ID: "color-glacier", Name: "Glacier", Category: models.CosmeticCategoryColor, XPCost: 60, Preview: "#38bdf8"},
		{ID: "color-venom", Name: "Venom", Category: models.CosmeticCategoryColor, XPCost: 120, MinRank: "Contender", Preview: "#a3e635"},
		{ID: "color-royalty", Name: "Royalty", Category: models.CosmeticCategoryColor, XPCost: 250, MinRank: "Gladiator", Preview: "#a855f7"},
		{ID: "color-solar", Name: "Solar Flare", Category: models.CosmeticCategoryColor, XPCost: 500, MinRank: "Titan", Preview: "#fbbf24"},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
		log.Printf("Failed to seed cosmetics: %v", err)
		return
	}

	log.Printf("Cosmetic catalog ready (%d items)", len(items))
}
