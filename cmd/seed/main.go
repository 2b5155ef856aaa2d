package main

import (
	"log"
	"os"
	"time"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
	"notekeeper-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with a few notes, labels and a shared note so a
// fresh environment has something to click through.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo data...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: Failed to hash password: %v", err)
		os.Exit(1)
	}

	now := time.Now()

	owner := model.User{
		Id:           uuid.New(),
		FirstName:    "Demo",
		LastName:     "Owner",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	friend := model.User{
		Id:           uuid.New(),
		FirstName:    "Demo",
		LastName:     "Friend",
		Email:        "friend@example.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := db.Create(&owner).Error; err != nil {
		color.Red("Error: Failed to create demo owner: %v", err)
		os.Exit(1)
	}
	if err := db.Create(&friend).Error; err != nil {
		color.Red("Error: Failed to create demo friend: %v", err)
		os.Exit(1)
	}

	teal, _ := entity.ResolveColour("Teal")

	notes := []model.Note{
		{
			Id:          uuid.New(),
			UserId:      owner.Id,
			Title:       "Groceries",
			Description: "Milk, eggs, bread and coffee",
			Colour:      teal,
			CreatedAt:   now,
		},
		{
			Id:          uuid.New(),
			UserId:      owner.Id,
			Title:       "Project ideas",
			Description: "Sketch the notekeeper mobile client",
			Pinned:      true,
			Colour:      entity.DefaultNoteColour,
			CreatedAt:   now,
		},
		{
			Id:          uuid.New(),
			UserId:      owner.Id,
			Title:       "Old receipts",
			Description: "Scanned and filed, keep until April",
			Archived:    true,
			Colour:      entity.DefaultNoteColour,
			CreatedAt:   now,
		},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			color.Red("Error: Failed to create demo note: %v", err)
			os.Exit(1)
		}
	}

	label := model.Label{
		Id:        uuid.New(),
		UserId:    owner.Id,
		Name:      "personal",
		CreatedAt: now,
	}
	if err := db.Create(&label).Error; err != nil {
		color.Red("Error: Failed to create demo label: %v", err)
		os.Exit(1)
	}

	attachment := model.NoteLabel{
		Id:        uuid.New(),
		UserId:    owner.Id,
		NoteId:    notes[0].Id,
		LabelId:   label.Id,
		CreatedAt: now,
	}
	if err := db.Create(&attachment).Error; err != nil {
		color.Red("Error: Failed to attach demo label: %v", err)
		os.Exit(1)
	}

	grant := model.Collaborator{
		Id:        uuid.New(),
		UserId:    owner.Id,
		NoteId:    notes[1].Id,
		Email:     friend.Email,
		CreatedAt: now,
	}
	if err := db.Create(&grant).Error; err != nil {
		color.Red("Error: Failed to create demo collaborator: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Success: Seeded demo users demo@example.com / friend@example.com (password123).")
}
