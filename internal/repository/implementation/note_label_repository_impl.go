package implementation

import (
	"context"
	"errors"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/mapper"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLabelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LabelMapper
}

func NewNoteLabelRepository(db *gorm.DB) contract.NoteLabelRepository {
	return &NoteLabelRepositoryImpl{
		db:     db,
		mapper: mapper.NewLabelMapper(),
	}
}

func (r *NoteLabelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteLabelRepositoryImpl) Create(ctx context.Context, noteLabel *entity.NoteLabel) error {
	m := r.mapper.NoteLabelToModel(noteLabel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*noteLabel = *r.mapper.NoteLabelToEntity(m)
	return nil
}

func (r *NoteLabelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NoteLabel{}, id).Error
}

func (r *NoteLabelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLabel, error) {
	var m model.NoteLabel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NoteLabelToEntity(&m), nil
}

func (r *NoteLabelRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteLabel{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
