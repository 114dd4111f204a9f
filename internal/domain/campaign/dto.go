package campaign

// CreateCampaignRequest is the body of POST /admin/ad-campaigns.
// Dates are RFC 3339 timestamps or YYYY-MM-DD.
type CreateCampaignRequest struct {
	Text            string `json:"text" validate:"required,notblank,max=500"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexcolor"`
	TextColor       string `json:"textColor" validate:"omitempty,hexcolor"`
	Priority        *int   `json:"priority"`
	StartDate       string `json:"startDate" validate:"required"`
	EndDate         string `json:"endDate" validate:"required"`
	IsActive        *bool  `json:"isActive"`
}

// UpdateCampaignRequest is the body of PATCH /admin/ad-campaigns/:id.
// Nil fields are left unchanged.
type UpdateCampaignRequest struct {
	Text            *string `json:"text" validate:"omitnil,notblank,max=500"`
	BackgroundColor *string `json:"backgroundColor" validate:"omitnil,hexcolor"`
	TextColor       *string `json:"textColor" validate:"omitnil,hexcolor"`
	Priority        *int    `json:"priority"`
	StartDate       *string `json:"startDate" validate:"omitnil,notblank"`
	EndDate         *string `json:"endDate" validate:"omitnil,notblank"`
	IsActive        *bool   `json:"isActive"`
}

func (r *UpdateCampaignRequest) Empty() bool {
	return r.Text == nil && r.BackgroundColor == nil && r.TextColor == nil &&
		r.Priority == nil && r.StartDate == nil && r.EndDate == nil && r.IsActive == nil
}
