package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	Kind              string    `gorm:"column:kind;index"`
	TargetProviderID  *int64    `gorm:"column:target_provider_id;index"`
	TargetProductType string    `gorm:"column:target_product_type;index"`
	TargetTouristID   *int64    `gorm:"column:target_tourist_id;index"`
	ReviewerID        int64     `gorm:"column:reviewer_id;index"`
	Rating            int       `gorm:"column:rating"`
	Comment           string    `gorm:"column:comment;type:text"`
	Approved          bool      `gorm:"column:approved;index"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:                m.ID,
		Kind:              domain.ReviewKind(m.Kind),
		TargetProviderID:  m.TargetProviderID,
		TargetProductType: m.TargetProductType,
		TargetTouristID:   m.TargetTouristID,
		ReviewerID:        m.ReviewerID,
		Rating:            m.Rating,
		Comment:           m.Comment,
		Approved:          m.Approved,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:                rv.ID,
		Kind:              string(rv.Kind),
		TargetProviderID:  rv.TargetProviderID,
		TargetProductType: rv.TargetProductType,
		TargetTouristID:   rv.TargetTouristID,
		ReviewerID:        rv.ReviewerID,
		Rating:            rv.Rating,
		Comment:           rv.Comment,
		Approved:          rv.Approved,
		CreatedAt:         rv.CreatedAt,
		UpdatedAt:         rv.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	rv.ID = m.ID
	rv.CreatedAt = m.CreatedAt
	rv.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ListApproved(ctx context.Context) ([]domain.Review, error) {
	var ms []reviewModel
	if err := r.db.WithContext(ctx).Where("approved = ?", true).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(ms), nil
}

func (r *ReviewRepository) ListPending(ctx context.Context) ([]domain.Review, error) {
	var ms []reviewModel
	if err := r.db.WithContext(ctx).Where("approved = ?", false).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(ms), nil
}

func (r *ReviewRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	res := r.db.WithContext(ctx).Model(&reviewModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"approved": approved, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toDomainReviews(ms []reviewModel) []domain.Review {
	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out
}
