package implementation

import (
	"context"
	"errors"

	"vg-ai-be/internal/entity"
	"vg-ai-be/internal/mapper"
	"vg-ai-be/internal/model"
	"vg-ai-be/internal/repository/contract"
	"vg-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptTurnMapper
}

func NewPromptTurnRepository(db *gorm.DB) contract.PromptTurnRepository {
	return &PromptTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptTurnMapper(),
	}
}

func (r *PromptTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptTurnRepositoryImpl) Create(ctx context.Context, turn *entity.PromptTurn) error {
	m := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptTurnRepositoryImpl) Update(ctx context.Context, turn *entity.PromptTurn) error {
	m := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptTurnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PromptTurn{}, id).Error
}

func (r *PromptTurnRepositoryImpl) DeleteByConversationId(ctx context.Context, conversationId string) error {
	return r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationId).
		Delete(&model.PromptTurn{}).Error
}

func (r *PromptTurnRepositoryImpl) UpdateStatusByConversationId(ctx context.Context, conversationId string, status entity.Status) error {
	return r.db.WithContext(ctx).
		Model(&model.PromptTurn{}).
		Where("conversation_id = ?", conversationId).
		Update("status", string(status)).Error
}

func (r *PromptTurnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTurn, error) {
	var m model.PromptTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTurn, error) {
	var models []*model.PromptTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PromptTurn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PromptTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PromptTurn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
