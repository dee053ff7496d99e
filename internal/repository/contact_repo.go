package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "contact_submissions" }

func toDomainContact(m contactModel) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, cs *domain.ContactSubmission) error {
	m := contactModel{
		Name:    cs.Name,
		Email:   cs.Email,
		Phone:   cs.Phone,
		Message: cs.Message,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	cs.ID = m.ID
	cs.CreatedAt = m.CreatedAt
	return nil
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	var ms []contactModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ContactSubmission, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&contactModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
