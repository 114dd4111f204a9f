package inquiry

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	Update(ctx context.Context, inq *Inquiry) error
	List(ctx context.Context) ([]Inquiry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inq *Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	var inq Inquiry
	if err := r.db.WithContext(ctx).First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inq, nil
}

func (r *repository) Update(ctx context.Context, inq *Inquiry) error {
	res := r.db.WithContext(ctx).Model(inq).
		Select("name", "phone_number", "email_id", "subject", "description", "called", "updated_at").
		Updates(inq)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

// List returns every inquiry, newest first.
func (r *repository) List(ctx context.Context) ([]Inquiry, error) {
	var inquiries []Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}
