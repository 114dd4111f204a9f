package campaign

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Campaign, error)
	// ListEnabled returns campaigns whose manual flag is on, regardless of
	// their date window.
	ListEnabled(ctx context.Context) ([]Campaign, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Campaign, error) {
	var c Campaign
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update writes every mutable column of c in a single statement.
func (r *repository) Update(ctx context.Context, c *Campaign) error {
	res := r.db.WithContext(ctx).Model(c).
		Select("text", "background_color", "text_color", "priority", "start_date", "end_date", "is_active", "updated_at").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Campaign{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *repository) ListEnabled(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}
