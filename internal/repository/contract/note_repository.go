package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateFlags writes both state flags in a single statement so the
	// pinned/archived exclusivity is never observably violated.
	UpdateFlags(ctx context.Context, id uuid.UUID, pinned, archived bool) error
	UpdateColour(ctx context.Context, id uuid.UUID, colour string) error

	// Visibility composer queries. FindVisibleIDs resolves the distinct,
	// newest-first note ids matching the specs (joins included);
	// FindRows fetches the label/collaborator-annotated rows for them.
	FindVisibleIDs(ctx context.Context, specs ...specification.Specification) ([]uuid.UUID, error)
	FindRows(ctx context.Context, specs ...specification.Specification) ([]entity.NoteRow, error)
}
