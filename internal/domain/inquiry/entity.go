package inquiry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry is a contact-form submission from the public site.
type Inquiry struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:32;not null"`
	EmailID     string    `json:"emailId" gorm:"not null"`
	Subject     string    `json:"subject" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Called      bool      `json:"called" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime:false;index"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

func (i *Inquiry) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
