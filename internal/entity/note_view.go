package entity

import "github.com/google/uuid"

// NoteRow is one raw row of the annotated visibility query. Left joins
// against labels and collaborators multiply rows (a note with two labels
// yields two rows), so the query service folds rows into one view per
// note.
type NoteRow struct {
	Id                uuid.UUID
	Title             string
	Description       string
	Pinned            bool
	Archived          bool
	Colour            string
	LabelName         *string
	CollaboratorEmail *string
}
