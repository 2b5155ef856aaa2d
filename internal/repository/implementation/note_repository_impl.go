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

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) UpdateFlags(ctx context.Context, id uuid.UUID, pinned, archived bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pinned":   pinned,
			"archived": archived,
		}).Error
}

func (r *NoteRepositoryImpl) UpdateColour(ctx context.Context, id uuid.UUID, colour string) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Update("colour", colour).Error
}

// FindVisibleIDs resolves which distinct notes match the specs. Grouping
// by notes.id collapses the join fan-out so pagination counts notes, not
// joined rows.
func (r *NoteRepositoryImpl) FindVisibleIDs(ctx context.Context, specs ...specification.Specification) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	err := query.
		Group("notes.id").
		Order("MAX(notes.created_at) DESC").
		Pluck("notes.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FindRows fetches the annotated rows for a set of notes. One row per
// (note, label, collaborator) combination; callers fold them into views.
func (r *NoteRepositoryImpl) FindRows(ctx context.Context, specs ...specification.Specification) ([]entity.NoteRow, error) {
	var rows []entity.NoteRow
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	err := query.
		Select("notes.id, notes.title, notes.description, notes.pinned, notes.archived, notes.colour, labels.name AS label_name, collaborators.email AS collaborator_email").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
