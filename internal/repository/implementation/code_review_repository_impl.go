package implementation

import (
	"context"
	"errors"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/mapper"
	"buildhive-be/internal/model"
	"buildhive-be/internal/repository/contract"
	"buildhive-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CodeReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CodeReviewMapper
}

func NewCodeReviewRepository(db *gorm.DB) contract.CodeReviewRepository {
	return &CodeReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewCodeReviewMapper(),
	}
}

func (r *CodeReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CodeReviewRepositoryImpl) Create(ctx context.Context, review *entity.CodeReview) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *CodeReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CodeReview, error) {
	var m model.CodeReview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CodeReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CodeReview, error) {
	var models []*model.CodeReview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CodeReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CodeReview{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CodeReviewRepositoryImpl) AverageScore(ctx context.Context, specs ...specification.Specification) (float64, error) {
	var avg *float64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CodeReview{}), specs...)
	if err := query.Select("AVG(score)").Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *CodeReviewRepositoryImpl) LanguageBreakdown(ctx context.Context, specs ...specification.Specification) (map[string]int64, error) {
	type row struct {
		Language string
		Total    int64
	}
	var rows []row
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CodeReview{}), specs...)
	if err := query.Select("language, COUNT(*) AS total").Group("language").Scan(&rows).Error; err != nil {
		return nil, err
	}
	breakdown := make(map[string]int64, len(rows))
	for _, r := range rows {
		breakdown[r.Language] = r.Total
	}
	return breakdown, nil
}
