package campaign

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPriority        = 1
	DefaultBackgroundColor = "#000000"
	DefaultTextColor       = "#ffffff"
)

// Campaign is a promotional banner shown on the public site while live.
type Campaign struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Text            string    `json:"text" gorm:"not null"`
	BackgroundColor string    `json:"backgroundColor" gorm:"size:16;not null"`
	TextColor       string    `json:"textColor" gorm:"size:16;not null"`
	Priority        int       `json:"priority" gorm:"not null"`
	StartDate       time.Time `json:"startDate" gorm:"not null;index"`
	EndDate         time.Time `json:"endDate" gorm:"not null;index"`
	IsActive        bool      `json:"isActive" gorm:"not null;index"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
	CreatedBy       string    `json:"createdBy"`
}

func (Campaign) TableName() string {
	return "ad_campaigns"
}

func (c *Campaign) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsLive reports whether the campaign should be displayed at now.
// The window is inclusive on both ends.
func (c *Campaign) IsLive(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// outranks reports whether c wins over other when both are live:
// higher priority first, then most recently created.
func (c *Campaign) outranks(other *Campaign) bool {
	if c.Priority != other.Priority {
		return c.Priority > other.Priority
	}
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.After(other.CreatedAt)
	}
	return c.ID > other.ID
}

// SelectActive returns the single campaign to display at now, or nil.
func SelectActive(campaigns []Campaign, now time.Time) *Campaign {
	var best *Campaign
	for i := range campaigns {
		c := &campaigns[i]
		if !c.IsLive(now) {
			continue
		}
		if best == nil || c.outranks(best) {
			best = c
		}
	}
	return best
}
