package main

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"starwarsapi/internal/config"
	"starwarsapi/internal/database"
	"starwarsapi/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, logger.Warn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	if cfg.SeedReset {
		log.Println("Cleaning old data...")
		// favorites first, they reference the other three tables
		for _, table := range []string{"favorites", "people", "planets", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatalf("cleanup %s failed: %v", table, err)
			}
		}
	}

	if err := seed(db, cfg.CurrentUserID); err != nil {
		log.Fatal("seed failed:", err)
	}
	log.Println("Seed completed")
}

func seed(db *gorm.DB, userID int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// existing rows are left untouched so the seed can be rerun
		insert := func(rows interface{}) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
		}

		// ================== USERS ==================
		log.Println("Creating users...")
		users := []domain.User{
			{ID: userID, Email: "luke@rebellion.org", Password: "usetheforce", IsActive: true},
		}
		if err := insert(&users); err != nil {
			return err
		}

		// ================== PEOPLE ==================
		log.Println("Creating people...")
		people := []domain.People{
			{ID: 1, Name: "Luke Skywalker", Height: "172", Mass: "77", HairColor: "blond", SkinColor: "fair", EyeColor: "blue", BirthYear: "19BBY", Gender: "male"},
			{ID: 2, Name: "C-3PO", Height: "167", Mass: "75", HairColor: "n/a", SkinColor: "gold", EyeColor: "yellow", BirthYear: "112BBY", Gender: "n/a"},
			{ID: 3, Name: "R2-D2", Height: "96", Mass: "32", HairColor: "n/a", SkinColor: "white, blue", EyeColor: "red", BirthYear: "33BBY", Gender: "n/a"},
			{ID: 4, Name: "Darth Vader", Height: "202", Mass: "136", HairColor: "none", SkinColor: "white", EyeColor: "yellow", BirthYear: "41.9BBY", Gender: "male"},
			{ID: 5, Name: "Leia Organa", Height: "150", Mass: "49", HairColor: "brown", SkinColor: "light", EyeColor: "brown", BirthYear: "19BBY", Gender: "female"},
		}
		if err := insert(&people); err != nil {
			return err
		}

		// ================== PLANETS ==================
		log.Println("Creating planets...")
		planets := []domain.Planet{
			{ID: 1, Name: "Tatooine", Diameter: "10465", RotationPeriod: "23", OrbitalPeriod: "304", Gravity: "1 standard", Population: "200000", Climate: "arid", Terrain: "desert", SurfaceWater: "1"},
			{ID: 2, Name: "Alderaan", Diameter: "12500", RotationPeriod: "24", OrbitalPeriod: "364", Gravity: "1 standard", Population: "2000000000", Climate: "temperate", Terrain: "grasslands, mountains", SurfaceWater: "40"},
			{ID: 3, Name: "Yavin IV", Diameter: "10200", RotationPeriod: "24", OrbitalPeriod: "4818", Gravity: "1 standard", Population: "1000", Climate: "temperate, tropical", Terrain: "jungle, rainforests", SurfaceWater: "8"},
			{ID: 4, Name: "Hoth", Diameter: "7200", RotationPeriod: "23", OrbitalPeriod: "549", Gravity: "1.1 standard", Population: "unknown", Climate: "frozen", Terrain: "tundra, ice caves, mountain ranges", SurfaceWater: "100"},
			{ID: 5, Name: "Dagobah", Diameter: "8900", RotationPeriod: "23", OrbitalPeriod: "341", Gravity: "N/A", Population: "unknown", Climate: "murky", Terrain: "swamp, jungles", SurfaceWater: "8"},
		}
		if err := insert(&planets); err != nil {
			return err
		}

		return syncSequences(tx, "users", "people", "planets")
	})
}

// syncSequences moves postgres serial sequences past the explicit ids
// inserted above, so later inserts without an id do not collide.
func syncSequences(tx *gorm.DB, tables ...string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range tables {
		q := "SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM " + table + "), 1))"
		if err := tx.Exec(q, table).Error; err != nil {
			return err
		}
	}
	return nil
}
