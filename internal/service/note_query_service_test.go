package service

import (
	"testing"

	"notekeeper-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestComposeNoteViews(t *testing.T) {
	noteA := uuid.New()
	noteB := uuid.New()

	rows := []entity.NoteRow{
		{Id: noteA, Title: "Groceries", Description: "milk", Colour: "rgb(255,255,255)", LabelName: strPtr("home"), CollaboratorEmail: strPtr("friend@example.com")},
		{Id: noteA, Title: "Groceries", Description: "milk", Colour: "rgb(255,255,255)", LabelName: strPtr("errands"), CollaboratorEmail: strPtr("friend@example.com")},
		{Id: noteB, Title: "Ideas", Description: "sketch", Pinned: true, Colour: "rgb(0,128,128)"},
	}

	t.Run("folds duplicated rows into one view per note", func(t *testing.T) {
		views := composeNoteViews([]uuid.UUID{noteA, noteB}, rows)

		assert.Len(t, views, 2)

		assert.Equal(t, noteA, views[0].Id)
		assert.Equal(t, []string{"home", "errands"}, views[0].Labels)
		assert.Equal(t, []string{"friend@example.com"}, views[0].Collaborators)

		assert.Equal(t, noteB, views[1].Id)
		assert.True(t, views[1].Pinned)
		assert.Empty(t, views[1].Labels)
		assert.Empty(t, views[1].Collaborators)
	})

	t.Run("keeps the order of the resolved ids", func(t *testing.T) {
		views := composeNoteViews([]uuid.UUID{noteB, noteA}, rows)

		assert.Len(t, views, 2)
		assert.Equal(t, noteB, views[0].Id)
		assert.Equal(t, noteA, views[1].Id)
	})

	t.Run("ignores rows outside the requested ids", func(t *testing.T) {
		views := composeNoteViews([]uuid.UUID{noteB}, rows)

		assert.Len(t, views, 1)
		assert.Equal(t, noteB, views[0].Id)
	})

	t.Run("empty input yields no views", func(t *testing.T) {
		assert.Empty(t, composeNoteViews(nil, nil))
	})
}
