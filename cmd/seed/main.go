// Seeds the database with sample accounts, jobs, and applications for local
// development. Destructive: wipes the marketplace tables first.
package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SaiVignesh27/unified-platform/internal/config"
	"github.com/SaiVignesh27/unified-platform/internal/database"
	"github.com/SaiVignesh27/unified-platform/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	for _, model := range []any{&models.Application{}, &models.Job{}, &models.Freelancer{}, &models.Recruiter{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatal("Failed to clear table:", err)
		}
	}
	log.Println("Database cleared, starting seeding...")

	password := mustHash("password123")

	john := models.Freelancer{
		Name:          "John Smith",
		Email:         "john@example.com",
		Password:      password,
		Role:          models.RoleFreelancer,
		Location:      "New York, USA",
		Bio:           "Full-stack developer with 5 years of experience in React, Node.js, and Postgres.",
		Skills:        []string{"React", "Node.js", "Postgres", "TypeScript", "Go"},
		Rating:        4.8,
		TotalEarnings: "$15,000",
		HoursWorked:   750,
	}
	emma := models.Freelancer{
		Name:          "Emma Wilson",
		Email:         "emma@example.com",
		Password:      password,
		Role:          models.RoleFreelancer,
		Location:      "London, UK",
		Bio:           "UI/UX designer creating intuitive interfaces with Figma and clean HTML/CSS.",
		Skills:        []string{"UI/UX Design", "Figma", "HTML", "CSS"},
		Rating:        4.6,
		TotalEarnings: "$9,500",
		HoursWorked:   420,
	}
	if err := db.Create(&john).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&emma).Error; err != nil {
		log.Fatal(err)
	}

	sarah := models.Recruiter{
		Name:     "Sarah Johnson",
		Email:    "sarah@techcorp.com",
		Password: password,
		Role:     models.RoleRecruiter,
		Location: "San Francisco, USA",
		Company:  "TechCorp Inc.",
		Bio:      "Hiring for fast-moving product teams.",
	}
	if err := db.Create(&sarah).Error; err != nil {
		log.Fatal(err)
	}

	job := models.Job{
		RecruiterID:    sarah.ID,
		RecruiterName:  sarah.Name,
		Title:          "Backend Developer",
		Description:    "Build and maintain our marketplace APIs.",
		Company:        sarah.Company,
		Location:       "Remote",
		SkillsRequired: []string{"Go", "Postgres"},
		Budget:         "$4,000",
		Deadline:       "2026-11-30",
		Status:         models.JobStatusActive,
		Applications:   models.UUIDList{},
	}
	if err := db.Create(&job).Error; err != nil {
		log.Fatal(err)
	}
	sarah.TotalListings = 1
	sarah.ActiveListings = models.ListingList{{
		ID:             job.ID,
		Title:          job.Title,
		SkillsRequired: job.SkillsRequired,
		Budget:         job.Budget,
		Deadline:       job.Deadline,
	}}
	if err := db.Save(&sarah).Error; err != nil {
		log.Fatal(err)
	}

	application := models.Application{
		JobID:        job.ID,
		FreelancerID: john.ID,
		CoverLetter:  "I have shipped several Go services backed by Postgres and would love to help.",
		Status:       models.ApplicationStatusPending,
		AppliedAt:    time.Now().UTC(),
	}
	if err := db.Create(&application).Error; err != nil {
		log.Fatal(err)
	}
	job.Applications = models.UUIDList{application.ID}
	if err := db.Save(&job).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Seeding complete")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(hash)
}
