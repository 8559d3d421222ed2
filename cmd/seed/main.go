package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"clubreview/internal/database"
	"clubreview/internal/domain"
	"clubreview/internal/repository"
)

type clubRecord struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clubreview.db"
	}

	// Bootstrap always starts from an empty store.
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		if err := os.Remove(dsn); err == nil {
			log.Println("Removed existing database file:", dsn)
		}
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (join tables first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM club_tags")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM clubs")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	for _, username := range []string{"josh", "mike"} {
		if err := db.Create(&domain.User{Username: username}).Error; err != nil {
			log.Fatalf("Creating user %s failed: %v", username, err)
		}
	}

	path := "clubs.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log.Println("Loading clubs from", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var records []clubRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatal("Parsing clubs file failed:", err)
	}

	ctx := context.Background()
	clubRepo := repository.NewClubRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	for _, rec := range records {
		if _, err := clubRepo.Create(ctx, rec.Code, rec.Name, rec.Description, rec.Tags); err != nil {
			log.Fatalf("Creating club %s failed: %v", rec.Code, err)
		}

		// mike starts out with two favorites.
		if rec.Code == "locustlabs" || rec.Code == "pppp" {
			if err := favoriteRepo.Add(ctx, "mike", rec.Code); err != nil {
				log.Fatalf("Favoriting %s failed: %v", rec.Code, err)
			}
		}
	}

	log.Printf("Seeded %d clubs", len(records))
}
