package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesFlow(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	suffix := uuid.New().String()
	now := time.Now()

	owner := &entity.User{
		Id:           uuid.New(),
		FirstName:    "Flow",
		LastName:     "Owner",
		Email:        "flow-owner-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))

	collab := &entity.User{
		Id:           uuid.New(),
		FirstName:    "Flow",
		LastName:     "Collab",
		Email:        "flow-collab-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, collab))

	t.Cleanup(func() {
		// Cascades take the notes, labels, attachments and grants along.
		_ = gormDB.Exec("DELETE FROM users WHERE id IN ?", []uuid.UUID{owner.Id, collab.Id}).Error
	})

	note := &entity.Note{
		Id:          uuid.New(),
		UserId:      owner.Id,
		Title:       "Flow note",
		Description: "created by the integration flow",
		Colour:      entity.DefaultNoteColour,
		CreatedAt:   now,
	}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))

	t.Run("owner scoped lookup", func(t *testing.T) {
		found, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: note.Id},
			specification.NoteOwnedByUser{UserID: owner.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, note.Title, found.Title)

		missing, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: note.Id},
			specification.NoteOwnedByUser{UserID: collab.Id},
		)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("flag update writes both flags", func(t *testing.T) {
		require.NoError(t, uow.NoteRepository().UpdateFlags(ctx, note.Id, true, false))

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Pinned)
		assert.False(t, found.Archived)
	})

	t.Run("colour update", func(t *testing.T) {
		rgb, ok := entity.ResolveColour("teal")
		require.True(t, ok)
		require.NoError(t, uow.NoteRepository().UpdateColour(ctx, note.Id, rgb))

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Equal(t, rgb, found.Colour)
	})

	t.Run("label attach and annotated rows", func(t *testing.T) {
		label := &entity.Label{
			Id:        uuid.New(),
			UserId:    owner.Id,
			Name:      "flow",
			CreatedAt: now,
		}
		require.NoError(t, uow.LabelRepository().Create(ctx, label))

		attachment := &entity.NoteLabel{
			Id:        uuid.New(),
			UserId:    owner.Id,
			NoteId:    note.Id,
			LabelId:   label.Id,
			CreatedAt: now,
		}
		require.NoError(t, uow.NoteLabelRepository().Create(ctx, attachment))

		grant := &entity.Collaborator{
			Id:        uuid.New(),
			UserId:    owner.Id,
			NoteId:    note.Id,
			Email:     collab.Email,
			CreatedAt: now,
		}
		require.NoError(t, uow.CollaboratorRepository().Create(ctx, grant))

		// Visibility composes with the flag filter: the pinned note is
		// resolved for both owner and collaborator.
		for _, viewer := range []*entity.User{owner, collab} {
			ids, err := uow.NoteRepository().FindVisibleIDs(ctx,
				specification.WithCollaboratorJoin{},
				specification.VisibleToUser{UserID: viewer.Id, Email: viewer.Email},
				specification.PinnedOnly{},
			)
			require.NoError(t, err)
			assert.Contains(t, ids, note.Id, "viewer %s", viewer.Email)
		}

		rows, err := uow.NoteRepository().FindRows(ctx,
			specification.WithCollaboratorJoin{},
			specification.WithLabelJoin{},
			specification.NotesByIDs{IDs: []uuid.UUID{note.Id}},
		)
		require.NoError(t, err)
		require.NotEmpty(t, rows)

		var sawLabel, sawCollab bool
		for _, row := range rows {
			if row.LabelName != nil && *row.LabelName == "flow" {
				sawLabel = true
			}
			if row.CollaboratorEmail != nil && *row.CollaboratorEmail == collab.Email {
				sawCollab = true
			}
		}
		assert.True(t, sawLabel)
		assert.True(t, sawCollab)
	})

	t.Run("search matches label names", func(t *testing.T) {
		ids, err := uow.NoteRepository().FindVisibleIDs(ctx,
			specification.WithCollaboratorJoin{},
			specification.WithLabelJoin{},
			specification.VisibleToUser{UserID: owner.Id, Email: owner.Email},
			specification.SearchMatch{Key: "FLOW"},
		)
		require.NoError(t, err)
		assert.Contains(t, ids, note.Id)
	})

	t.Run("delete clears the dependents", func(t *testing.T) {
		require.NoError(t, uow.NoteRepository().Delete(ctx, note.Id))

		count, err := uow.CollaboratorRepository().Count(ctx, specification.ByNoteID{NoteID: note.Id})
		require.NoError(t, err)
		assert.Zero(t, count)

		count, err = uow.NoteLabelRepository().Count(ctx, specification.ByNoteID{NoteID: note.Id})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
