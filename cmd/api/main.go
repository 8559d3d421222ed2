package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clubreview/internal/database"
	"clubreview/internal/modules/clubs"
	"clubreview/internal/modules/tags"
	"clubreview/internal/modules/users"
	"clubreview/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clubreview.db"
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clubRepo := repository.NewClubRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	clubsHandler := clubs.NewHandler(clubRepo)
	usersHandler := users.NewHandler(userRepo, clubRepo, favoriteRepo)
	tagsHandler := tags.NewHandler(tagRepo)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Penn Club Review!")
	})

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Penn Club Review API!."})
		})

		clubsHandler.RegisterRoutes(api)
		usersHandler.RegisterRoutes(api)
		tagsHandler.RegisterRoutes(api)
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
