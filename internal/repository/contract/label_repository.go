package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LabelRepository interface {
	Create(ctx context.Context, label *entity.Label) error
	Update(ctx context.Context, label *entity.Label) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Label, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Label, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type NoteLabelRepository interface {
	Create(ctx context.Context, noteLabel *entity.NoteLabel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLabel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
