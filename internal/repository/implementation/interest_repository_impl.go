package implementation

import (
	"context"
	"errors"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/mapper"
	"buildhive-be/internal/model"
	"buildhive-be/internal/repository/contract"
	"buildhive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterestMapper
}

func NewInterestRepository(db *gorm.DB) contract.InterestRepository {
	return &InterestRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterestMapper(),
	}
}

func (r *InterestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterestRepositoryImpl) Create(ctx context.Context, interest *entity.Interest) error {
	m := r.mapper.ToModel(interest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interest = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterestRepositoryImpl) Update(ctx context.Context, interest *entity.Interest) error {
	m := r.mapper.ToModel(interest)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*interest = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Interest{}, id).Error
}

func (r *InterestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interest, error) {
	var m model.Interest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interest, error) {
	var models []*model.Interest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
