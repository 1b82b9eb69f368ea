package main

import (
	"log"
	"os"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/model"
	"intern-matching-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Company{},
		&model.InternProfile{},
		&model.JobPost{},
		&model.EntityEmbedding{},
		&model.MatchingConfiguration{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. Post-Migration: ANN index for cosine search. AutoMigrate cannot
	// express opclass-specific indexes.
	log.Println("Step 3: Creating vector index...")

	indexSQL := `CREATE INDEX IF NOT EXISTS idx_entity_embeddings_cosine
		ON entity_embeddings
		USING ivfflat (embedding_value vector_cosine_ops)
		WITH (lists = 100);`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create vector index: %v. Continuing...", err)
	}

	// 6. Seed default matching parameters (idempotent)
	log.Println("Step 4: Seeding default matching configuration...")

	defaults := []model.MatchingConfiguration{
		{Key: constant.ConfigKeySimilarityThreshold, Value: "0.35"},
		{Key: constant.ConfigKeyMatchLimit, Value: "10"},
	}
	for _, c := range defaults {
		var existing model.MatchingConfiguration
		if err := db.Where("key = ?", c.Key).First(&existing).Error; err == nil {
			log.Printf("Config '%s' already exists, skipping...", c.Key)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating config '%s': %v", c.Key, err)
		} else {
			log.Printf("Created config: %s = %s", c.Key, c.Value)
		}
	}

	log.Println("Migration completed!")
}
