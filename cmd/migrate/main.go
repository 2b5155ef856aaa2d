package main

import (
	"log"
	"os"

	"notekeeper-be/internal/model"
	"notekeeper-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM migration...")

	// 3. Pre-Migration: Extensions
	color.Cyan("Step 1: Setting up extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.Note{},
		&model.Label{},
		&model.NoteLabel{},
		&model.Collaborator{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: Foreign keys with cascading deletes.
	// Deleting a user takes their notes, labels and grants with it, and
	// deleting a note or label clears its attachments and collaborators.
	color.Cyan("Step 3: Declaring foreign keys...")

	constraintSQL := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_notes_user') THEN
			ALTER TABLE notes ADD CONSTRAINT fk_notes_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_labels_user') THEN
			ALTER TABLE labels ADD CONSTRAINT fk_labels_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_note_labels_user') THEN
			ALTER TABLE note_labels ADD CONSTRAINT fk_note_labels_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_note_labels_note') THEN
			ALTER TABLE note_labels ADD CONSTRAINT fk_note_labels_note FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_note_labels_label') THEN
			ALTER TABLE note_labels ADD CONSTRAINT fk_note_labels_label FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_collaborators_user') THEN
			ALTER TABLE collaborators ADD CONSTRAINT fk_collaborators_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_collaborators_note') THEN
			ALTER TABLE collaborators ADD CONSTRAINT fk_collaborators_note FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE;
		END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_password_reset_tokens_user') THEN
			ALTER TABLE password_reset_tokens ADD CONSTRAINT fk_password_reset_tokens_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
		END IF; END $$;`,
	}

	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute constraint SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
