package main

import (
	"log"
	"os"

	"intern-matching-be/internal/model"
	"intern-matching-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a small demo dataset so the matching endpoints can be exercised
// end-to-end right after a fresh migration. Embeddings are NOT seeded here;
// run the embed triggers against the REST API to generate them.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding demo companies, job posts and intern profiles\n")

	companies := []model.Company{
		{Name: "Nimbus Analytics"},
		{Name: "Kopi Digital Studio"},
	}
	for i := range companies {
		var existing model.Company
		if err := db.Where("name = ?", companies[i].Name).First(&existing).Error; err == nil {
			companies[i] = existing
			color.Yellow("Company '%s' already exists, skipping...", existing.Name)
			continue
		}
		if err := db.Create(&companies[i]).Error; err != nil {
			color.Red("Failed to create company '%s': %v", companies[i].Name, err)
			os.Exit(1)
		}
		color.Green("Created company: %s", companies[i].Name)
	}

	jobs := []model.JobPost{
		{
			CompanyId:   companies[0].Id,
			Title:       "Frontend Engineering Intern",
			Description: "Build dashboards and data visualisations for our analytics platform.",
			Requirements: datatypes.JSONSlice[string]{
				"React", "TypeScript", "CSS",
			},
			Responsibilities: datatypes.JSONSlice[string]{
				"Implement UI components", "Write unit tests", "Review pull requests",
			},
		},
		{
			CompanyId:   companies[0].Id,
			Title:       "Backend Engineering Intern",
			Description: "Work on our Go services and PostgreSQL data pipeline.",
			Requirements: datatypes.JSONSlice[string]{
				"Go", "SQL", "REST APIs",
			},
			Responsibilities: datatypes.JSONSlice[string]{
				"Design endpoints", "Optimise queries", "Maintain integration tests",
			},
		},
		{
			CompanyId:   companies[1].Id,
			Title:       "Social Media Design Intern",
			Description: "Create visual content for client campaigns.",
			Requirements: datatypes.JSONSlice[string]{
				"Figma", "Adobe Illustrator", "Copywriting",
			},
			Responsibilities: datatypes.JSONSlice[string]{
				"Design post templates", "Prepare campaign assets",
			},
		},
	}
	for i := range jobs {
		var existing model.JobPost
		if err := db.Where("title = ? AND company_id = ?", jobs[i].Title, jobs[i].CompanyId).
			First(&existing).Error; err == nil {
			color.Yellow("Job '%s' already exists, skipping...", existing.Title)
			continue
		}
		if err := db.Create(&jobs[i]).Error; err != nil {
			color.Red("Failed to create job '%s': %v", jobs[i].Title, err)
			os.Exit(1)
		}
		color.Green("Created job: %s", jobs[i].Title)
	}

	interns := []model.InternProfile{
		{
			FullName: "Ayu Lestari",
			Summary:  "Final-year CS student who enjoys building web frontends and polishing UX details.",
			Skills:   datatypes.JSONSlice[string]{"React", "TypeScript", "Tailwind"},
		},
		{
			FullName: "Bagus Pratama",
			Summary:  "Backend-leaning student with experience in Go, PostgreSQL and Docker from campus projects.",
			Skills:   datatypes.JSONSlice[string]{"Go", "PostgreSQL", "Docker"},
		},
		{
			FullName: "Citra Maharani",
			Summary:  "Visual design student with a portfolio of social media campaigns.",
			Skills:   datatypes.JSONSlice[string]{"Figma", "Illustrator", "Branding"},
		},
	}
	for i := range interns {
		var existing model.InternProfile
		if err := db.Where("full_name = ?", interns[i].FullName).First(&existing).Error; err == nil {
			color.Yellow("Intern '%s' already exists, skipping...", existing.FullName)
			continue
		}
		if err := db.Create(&interns[i]).Error; err != nil {
			color.Red("Failed to create intern '%s': %v", interns[i].FullName, err)
			os.Exit(1)
		}
		color.Green("Created intern: %s", interns[i].FullName)
	}

	color.Cyan("\n✅ Seeding completed. POST /api/matching/v1/embed-intern and embed-job to generate embeddings.")
}
