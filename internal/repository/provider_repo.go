package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	OwnerID         int64     `gorm:"column:owner_id;index"`
	Name            string    `gorm:"column:name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	Category        string    `gorm:"column:category"`
	Location        string    `gorm:"column:location"`
	BasePrice       float64   `gorm:"column:base_price"`
	Description     string    `gorm:"column:description;type:text"`
	Approved        bool      `gorm:"column:approved"`
	ProfileImageURL string    `gorm:"column:profile_image_url"`
	GalleryJSON     string    `gorm:"column:gallery_json;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (providerModel) TableName() string { return "providers" }

func toDomainProvider(m providerModel) *domain.Provider {
	var gallery []string
	if m.GalleryJSON != "" {
		_ = json.Unmarshal([]byte(m.GalleryJSON), &gallery)
	}

	return &domain.Provider{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Category:        domain.ProviderCategory(m.Category),
		Location:        m.Location,
		BasePrice:       m.BasePrice,
		Description:     m.Description,
		Approved:        m.Approved,
		ProfileImageURL: m.ProfileImageURL,
		GalleryImages:   gallery,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toProviderModel(p *domain.Provider) providerModel {
	var galleryJSON string
	if len(p.GalleryImages) > 0 {
		raw, _ := json.Marshal(p.GalleryImages)
		galleryJSON = string(raw)
	}

	return providerModel{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Category:        string(p.Category),
		Location:        p.Location,
		BasePrice:       p.BasePrice,
		Description:     p.Description,
		Approved:        p.Approved,
		ProfileImageURL: p.ProfileImageURL,
		GalleryJSON:     galleryJSON,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	m := toProviderModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	var m providerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainProvider(m), nil
}

func (r *ProviderRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.Provider, error) {
	var m providerModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainProvider(m), nil
}

func (r *ProviderRepository) ListApproved(ctx context.Context, category string) ([]domain.Provider, error) {
	q := r.db.WithContext(ctx).Where("approved = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var ms []providerModel
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainProviders(ms), nil
}

func (r *ProviderRepository) ListPending(ctx context.Context) ([]domain.Provider, error) {
	var ms []providerModel
	if err := r.db.WithContext(ctx).Where("approved = ?", false).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainProviders(ms), nil
}

func (r *ProviderRepository) ListAll(ctx context.Context) ([]domain.Provider, error) {
	var ms []providerModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainProviders(ms), nil
}

func (r *ProviderRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	res := r.db.WithContext(ctx).Model(&providerModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"approved": approved, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProviderRepository) SetProfileImage(ctx context.Context, id int64, url string) error {
	res := r.db.WithContext(ctx).Model(&providerModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"profile_image_url": url, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AppendGalleryImage reads, extends and rewrites the serialized gallery.
func (r *ProviderRepository) AppendGalleryImage(ctx context.Context, id int64, url string) error {
	var m providerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return err
	}

	var gallery []string
	if m.GalleryJSON != "" {
		_ = json.Unmarshal([]byte(m.GalleryJSON), &gallery)
	}
	gallery = append(gallery, url)
	raw, err := json.Marshal(gallery)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&providerModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"gallery_json": string(raw), "updated_at": time.Now().UTC()}).Error
}

func (r *ProviderRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&providerModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toDomainProviders(ms []providerModel) []domain.Provider {
	out := make([]domain.Provider, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProvider(m))
	}
	return out
}
