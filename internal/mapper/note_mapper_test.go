package mapper

import (
	"testing"
	"time"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteMapperRoundTrip(t *testing.T) {
	m := NewNoteMapper()
	now := time.Now()

	src := &model.Note{
		Id:          uuid.New(),
		UserId:      uuid.New(),
		Title:       "Groceries",
		Description: "milk and eggs",
		Pinned:      true,
		Colour:      "rgb(0,128,128)",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	e := m.ToEntity(src)
	assert.Equal(t, src.Id, e.Id)
	assert.Equal(t, src.Title, e.Title)
	assert.True(t, e.Pinned)
	assert.NotNil(t, e.UpdatedAt)

	back := m.ToModel(e)
	assert.Equal(t, src.Id, back.Id)
	assert.Equal(t, src.Colour, back.Colour)
	assert.Equal(t, src.UpdatedAt.Unix(), back.UpdatedAt.Unix())
}

func TestNoteMapperZeroUpdatedAt(t *testing.T) {
	m := NewNoteMapper()

	// A never-updated note carries a zero timestamp in the row and a nil
	// pointer on the entity.
	e := m.ToEntity(&model.Note{Id: uuid.New()})
	assert.Nil(t, e.UpdatedAt)

	back := m.ToModel(&entity.Note{Id: e.Id})
	assert.True(t, back.UpdatedAt.IsZero())
}

func TestNoteMapperNil(t *testing.T) {
	m := NewNoteMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
