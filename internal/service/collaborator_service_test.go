package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPublisher simulates the mail queue being unavailable.
type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.calls++
	return errors.New("pubsub is closed")
}

type stubUserRepo struct {
	contract.UserRepository
	byEmail *entity.User
	byID    *entity.User
	tokens  []*entity.PasswordResetToken
}

func (r *stubUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if _, ok := s.(specification.ByEmail); ok {
			return r.byEmail, nil
		}
	}
	return r.byID, nil
}

func (r *stubUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	r.tokens = append(r.tokens, token)
	return nil
}

type stubNoteRepo struct {
	contract.NoteRepository
	note *entity.Note
}

func (r *stubNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	return r.note, nil
}

type stubCollaboratorRepo struct {
	contract.CollaboratorRepository
	existing *entity.Collaborator
	created  []*entity.Collaborator
}

func (r *stubCollaboratorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Collaborator, error) {
	return r.existing, nil
}

func (r *stubCollaboratorRepo) Create(ctx context.Context, collaborator *entity.Collaborator) error {
	r.created = append(r.created, collaborator)
	return nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	users   *stubUserRepo
	notes   *stubNoteRepo
	collabs *stubCollaboratorRepo
}

func (u *stubUnitOfWork) UserRepository() contract.UserRepository { return u.users }

func (u *stubUnitOfWork) NoteRepository() contract.NoteRepository { return u.notes }

func (u *stubUnitOfWork) CollaboratorRepository() contract.CollaboratorRepository { return u.collabs }

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func TestAddCollaboratorSurvivesMailQueueFailure(t *testing.T) {
	ownerId := uuid.New()
	note := &entity.Note{
		Id:     uuid.New(),
		UserId: ownerId,
		Title:  "Shared plans",
	}
	owner := &entity.User{Id: ownerId, Email: "owner@example.com"}
	invitee := &entity.User{Id: uuid.New(), Email: "friend@example.com"}

	uow := &stubUnitOfWork{
		users:   &stubUserRepo{byEmail: invitee, byID: owner},
		notes:   &stubNoteRepo{note: note},
		collabs: &stubCollaboratorRepo{},
	}
	publisher := &failingPublisher{}
	svc := NewCollaboratorService(&stubFactory{uow: uow}, publisher, nil)

	res, err := svc.Add(context.Background(), ownerId, &dto.AddCollaboratorRequest{
		NoteId: note.Id,
		Email:  invitee.Email,
	})

	// The grant is committed before the mail is queued; a queue failure
	// must not surface to the caller.
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, uow.collabs.created, 1)
	assert.Equal(t, invitee.Email, uow.collabs.created[0].Email)
	assert.Equal(t, 1, publisher.calls)
}

func TestForgotPasswordSurvivesMailQueueFailure(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "owner@example.com"}
	uow := &stubUnitOfWork{
		users: &stubUserRepo{byEmail: user},
	}
	publisher := &failingPublisher{}
	svc := NewAuthService(&stubFactory{uow: uow}, "secret", nil, publisher, nil)

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: user.Email})

	require.NoError(t, err)
	require.Len(t, uow.users.tokens, 1)
	token := uow.users.tokens[0]
	assert.Equal(t, user.Id, token.UserId)
	assert.False(t, token.Used)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
	assert.Equal(t, 1, publisher.calls)
}
