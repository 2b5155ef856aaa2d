package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"
	"notekeeper-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenPublisher fails every publish, standing in for a mail queue that
// is down while the database keeps working.
type brokenPublisher struct{}

func (p *brokenPublisher) Publish(ctx context.Context, payload []byte) error {
	return errors.New("pubsub is closed")
}

func containsNote(notes []dto.NoteViewResponse, id uuid.UUID) bool {
	for _, n := range notes {
		if n.Id == id {
			return true
		}
	}
	return false
}

func TestServicesFlow(t *testing.T) {
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

	authService := service.NewAuthService(uowFactory, "integration-secret", nil, &brokenPublisher{}, nil)
	noteService := service.NewNoteService(uowFactory, nil)
	queryService := service.NewNoteQueryService(uowFactory, 4)
	labelService := service.NewLabelService(uowFactory)
	collaboratorService := service.NewCollaboratorService(uowFactory, &brokenPublisher{}, nil)

	suffix := uuid.New().String()
	register := func(t *testing.T, name string) *dto.RegisterResponse {
		t.Helper()
		res, err := authService.Register(ctx, &dto.RegisterRequest{
			FirstName:            name,
			LastName:             "Services",
			Email:                name + "-" + suffix + "@example.com",
			Password:             "password123",
			PasswordConfirmation: "password123",
		})
		require.NoError(t, err)
		return res
	}

	owner := register(t, "owner")
	collab := register(t, "collab")
	outsider := register(t, "outsider")

	t.Cleanup(func() {
		_ = gormDB.Exec("DELETE FROM users WHERE id IN ?",
			[]uuid.UUID{owner.Id, collab.Id, outsider.Id}).Error
	})

	created, err := noteService.Create(ctx, owner.Id, &dto.CreateNoteRequest{
		Title:       "Shared plans",
		Description: "kept across the whole flow",
	})
	require.NoError(t, err)
	noteId := created.Id

	t.Run("duplicate label attach conflicts and keeps one row", func(t *testing.T) {
		label, err := labelService.Create(ctx, owner.Id, &dto.CreateLabelRequest{Name: "errand"})
		require.NoError(t, err)

		attach := &dto.AttachLabelRequest{NoteId: noteId, LabelId: label.Id}
		_, err = labelService.Attach(ctx, owner.Id, attach)
		require.NoError(t, err)

		_, err = labelService.Attach(ctx, owner.Id, attach)
		require.Error(t, err)
		assert.Equal(t, apperror.CodeConflict, apperror.From(err).Code)

		count, err := uow.NoteLabelRepository().Count(ctx, specification.ByNoteID{NoteID: noteId})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("grant survives a dead mail queue", func(t *testing.T) {
		_, err := collaboratorService.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{
			NoteId: noteId,
			Email:  collab.Email,
		})
		require.NoError(t, err)

		count, err := uow.CollaboratorRepository().Count(ctx, specification.ByNoteID{NoteID: noteId})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("duplicate collaborator add conflicts and keeps one row", func(t *testing.T) {
		_, err := collaboratorService.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{
			NoteId: noteId,
			Email:  collab.Email,
		})
		require.Error(t, err)
		assert.Equal(t, apperror.CodeConflict, apperror.From(err).Code)

		count, err := uow.CollaboratorRepository().Count(ctx, specification.ByNoteID{NoteID: noteId})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("non-collaborator cannot update a shared note", func(t *testing.T) {
		_, err := collaboratorService.UpdateNote(ctx, outsider.Id, &dto.CollaboratorUpdateNoteRequest{
			NoteId:      noteId,
			Title:       "Hijacked",
			Description: "should never land",
		})
		require.Error(t, err)
		assert.Equal(t, apperror.CodeNotFound, apperror.From(err).Code)
	})

	t.Run("reset token survives a dead mail queue", func(t *testing.T) {
		require.NoError(t, authService.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: owner.Email}))

		token, err := uow.UserRepository().FindPasswordResetToken(ctx,
			specification.UserOwnedBy{UserID: owner.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.False(t, token.Used)
	})

	t.Run("pin and archive move the note between listings", func(t *testing.T) {
		list, err := queryService.List(ctx, owner.Id, 1)
		require.NoError(t, err)
		assert.True(t, containsNote(list.Notes, noteId))

		require.NoError(t, noteService.Pin(ctx, owner.Id, noteId))

		list, err = queryService.List(ctx, owner.Id, 1)
		require.NoError(t, err)
		assert.False(t, containsNote(list.Notes, noteId))

		pinned, err := queryService.Pinned(ctx, owner.Id, 1)
		require.NoError(t, err)
		assert.True(t, containsNote(pinned.Notes, noteId))

		require.NoError(t, noteService.Archive(ctx, owner.Id, noteId))

		shown, err := noteService.Show(ctx, owner.Id, noteId)
		require.NoError(t, err)
		assert.False(t, shown.Pinned)
		assert.True(t, shown.Archived)

		pinned, err = queryService.Pinned(ctx, owner.Id, 1)
		require.NoError(t, err)
		assert.False(t, containsNote(pinned.Notes, noteId))

		archived, err := queryService.Archived(ctx, owner.Id, 1)
		require.NoError(t, err)
		assert.True(t, containsNote(archived.Notes, noteId))
	})
}
