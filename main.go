package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joho/godotenv"

	"studio/controller"
	"studio/database"
	"studio/database/migrations"
	"studio/route"
	"studio/storage"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(err)
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "studio.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := migrations.MigrateUp(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	bucket, err := storage.NewS3Store(context.Background(), os.Getenv("BUCKET_NAME"))
	if err != nil {
		log.Fatal("Failed to init object store:", err)
	}

	env := &controller.Env{
		DB:        db,
		Bucket:    bucket,
		BucketURL: os.Getenv("BUCKET_PUBLIC_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          24 * time.Hour,
	}))
	route.Public(router, env)
	route.Protected(router, env)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8007"
	}
	router.Run(":" + port)
}
