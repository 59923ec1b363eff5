package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// SeedQuests loads the immutable quest catalog: the public pool the weekly
// rotation draws from, and the hidden pool revealed by achievements.
// Idempotent: existing rows are left untouched.
func SeedQuests(db *gorm.DB) {
	log.Println("🗡️ Seeding quest catalog...")

	quests := append(publicQuests(), hiddenQuests()...)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&quests).Error; err != nil {
		log.Printf("Failed to seed quests: %v", err)
		return
	}

	log.Printf("Quest catalog ready (%d public, %d hidden)", len(publicQuests()), len(hiddenQuests()))
}

func pq(id, title, description, icon string, category models.QuestCategory, target, xp int) models.Quest {
	return models.Quest{
		ID: id, Title: title, Description: description, Icon: icon,
		Category: category, Target: target, XPReward: xp,
	}
}

func publicQuests() []models.Quest {
	return []models.Quest{
		// Body-part focus
		pq("chest-day-trifecta", "Chest Day Trifecta", "Log 3 chest workouts this week.", "shirt", models.QuestCategoryBodyPart, 3, 40),
		pq("leg-day-loyalist", "Leg Day Loyalist", "Log 3 leg workouts. No skipping.", "footprints", models.QuestCategoryBodyPart, 3, 40),
		pq("back-attack", "Back Attack", "Log 3 back-focused sessions.", "anchor", models.QuestCategoryBodyPart, 3, 40),
		pq("boulder-shoulders", "Boulder Shoulders", "Log 3 shoulder sessions.", "mountain", models.QuestCategoryBodyPart, 3, 40),
		pq("arm-architect", "Arm Architect", "Log 4 arm workouts this week.", "flex", models.QuestCategoryBodyPart, 4, 45),
		pq("core-control", "Core Control", "Log 4 core sessions.", "target", models.QuestCategoryBodyPart, 4, 45),
		pq("glute-camp", "Glute Camp", "Log 3 glute-focused sessions.", "peach", models.QuestCategoryBodyPart, 3, 40),
		pq("full-body-blitz", "Full Body Blitz", "Log 2 full-body workouts.", "body", models.QuestCategoryBodyPart, 2, 35),

		// Cardio
		pq("roadwork", "Roadwork", "Finish 3 cardio sessions.", "road", models.QuestCategoryCardio, 3, 40),
		pq("engine-builder", "Engine Builder", "Finish 5 cardio sessions.", "engine", models.QuestCategoryCardio, 5, 60),
		pq("dawn-patrol", "Dawn Patrol", "Do 2 morning cardio sessions.", "sunrise", models.QuestCategoryCardio, 2, 35),
		pq("row-the-boat", "Row the Boat", "Log 3 rowing workouts.", "waves", models.QuestCategoryCardio, 3, 40),
		pq("stair-master", "Stair Master", "Log 2 stair or incline sessions.", "stairs", models.QuestCategoryCardio, 2, 35),
		pq("sprint-week", "Sprint Week", "Log 3 interval sprint sessions.", "timer", models.QuestCategoryCardio, 3, 45),
		pq("long-hauler", "Long Hauler", "Complete 1 session over 60 minutes.", "clock", models.QuestCategoryCardio, 1, 30),

		// Social
		pq("spot-me", "Spot Me", "Train with a partner 2 times.", "users", models.QuestCategorySocial, 2, 40),
		pq("wingman", "Wingman", "Accept a workout invite.", "handshake", models.QuestCategorySocial, 1, 25),
		pq("gym-greeter", "Gym Greeter", "Match with 3 new workout partners.", "wave", models.QuestCategorySocial, 3, 50),
		pq("crew-assembler", "Crew Assembler", "Complete 2 group workouts.", "group", models.QuestCategorySocial, 2, 40),
		pq("friendly-rivalry", "Friendly Rivalry", "Send 2 duel challenges.", "swords", models.QuestCategorySocial, 2, 40),
		pq("hype-squad", "Hype Squad", "Cheer on 5 partner workouts.", "megaphone", models.QuestCategorySocial, 5, 35),

		// PR chasing
		pq("pr-hunter", "PR Hunter", "Set a new personal record on any lift.", "trophy", models.QuestCategoryPR, 1, 60),
		pq("bench-breaker", "Bench Breaker", "Set a new bench press PR.", "bench", models.QuestCategoryPR, 1, 60),
		pq("squat-summit", "Squat Summit", "Set a new squat PR.", "arrow-up", models.QuestCategoryPR, 1, 60),
		pq("deadlift-dominion", "Deadlift Dominion", "Set a new deadlift PR.", "barbell", models.QuestCategoryPR, 1, 60),
		pq("overhead-overlord", "Overhead Overlord", "Set a new overhead press PR.", "arrow-up-circle", models.QuestCategoryPR, 1, 60),
		pq("double-trouble", "Double Trouble", "Set PRs on 2 different lifts.", "sparkles", models.QuestCategoryPR, 2, 100),

		// Endurance / consistency
		pq("show-up", "Show Up", "Log 3 workouts this week.", "calendar-check", models.QuestCategoryConsistency, 3, 40),
		pq("no-days-off", "No Days Off", "Log 5 workouts this week.", "flame", models.QuestCategoryConsistency, 5, 70),
		pq("iron-week", "Iron Week", "Log 6 workouts this week.", "shield", models.QuestCategoryConsistency, 6, 90),
		pq("weekend-warrior", "Weekend Warrior", "Train on both weekend days.", "sun", models.QuestCategoryConsistency, 2, 35),
		pq("early-bird", "Early Bird", "Log 3 sessions before 9am.", "alarm", models.QuestCategoryConsistency, 3, 45),
		pq("volume-dealer", "Volume Dealer", "Complete 100 total working sets.", "layers", models.QuestCategoryConsistency, 100, 80),
		pq("rep-collector", "Rep Collector", "Accumulate 500 reps this week.", "hash", models.QuestCategoryConsistency, 500, 80),

		// Exercise variety
		pq("mix-it-up", "Mix It Up", "Train 4 different exercise types.", "shuffle", models.QuestCategoryVariety, 4, 45),
		pq("machine-free", "Machine Free", "Do 3 free-weight-only sessions.", "dumbbell", models.QuestCategoryVariety, 3, 45),
		pq("bodyweight-basics", "Bodyweight Basics", "Do 2 bodyweight-only sessions.", "person", models.QuestCategoryVariety, 2, 35),
		pq("new-horizons", "New Horizons", "Try 2 exercises you've never logged.", "compass", models.QuestCategoryVariety, 2, 40),
		pq("mobility-matters", "Mobility Matters", "Log 3 mobility or stretch sessions.", "wind", models.QuestCategoryVariety, 3, 40),
		pq("unilateral-union", "Unilateral Union", "Log 3 single-limb exercise sessions.", "split", models.QuestCategoryVariety, 3, 45),
	}
}

func hq(id, revealTitle, revealDescription, revealIcon, trigger string, target, xp int) models.Quest {
	return models.Quest{
		ID:                id,
		Title:             "???",
		Description:       "Hidden until you earn it.",
		Icon:              "lock",
		Category:          models.QuestCategoryHidden,
		Target:            target,
		XPReward:          xp,
		Hidden:            true,
		RevealTitle:       revealTitle,
		RevealDescription: revealDescription,
		RevealIcon:        revealIcon,
		UnlockTrigger:     trigger,
	}
}

func hiddenQuests() []models.Quest {
	return []models.Quest{
		// Gym-war achievements
		hq("war-veteran", "War Veteran", "Fight in 3 gym wars.", "shield-half", models.TriggerGymWarWin, 3, 150),
		hq("banner-carrier", "Banner Carrier", "Top your gym's contribution board in a war.", "flag", models.TriggerGymWarWin, 1, 200),
		hq("siege-breaker", "Siege Breaker", "Win a war against a higher-ranked gym.", "castle", models.TriggerGymWarWin, 1, 250),
		hq("dynasty", "Dynasty", "Win 3 gym wars in a row.", "crown", models.TriggerGymWarWin, 3, 300),

		// Duel achievements
		hq("duelist-supreme", "Duelist Supreme", "Win 10 duels.", "swords", models.TriggerDuelChampion, 10, 200),
		hq("giant-slayer", "Giant Slayer", "Beat an opponent a full rank tier above you.", "axe", models.TriggerDuelChampion, 1, 250),
		hq("untouchable", "Untouchable", "Win 5 duels without a single loss between them.", "sparkle", models.TriggerDuelChampion, 5, 300),

		// Extreme achievements
		hq("four-plate-club", "Four Plate Club", "Deadlift 405 lbs or more.", "weight", models.TriggerEliteTotal, 1, 250),
		hq("half-ton-total", "Half Ton Total", "Reach a 1000 lb big-4 total... then keep going.", "gauge", models.TriggerEliteTotal, 1, 300),
		hq("mythic-strength", "Mythic Strength", "Hold an 1800 lb big-4 total.", "gem", models.TriggerEliteTotal, 1, 500),
	}
}
