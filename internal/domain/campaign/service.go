package campaign

import (
	"context"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for timestamps and live checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(ctx context.Context, req *CreateCampaignRequest, createdBy string) (*Campaign, error) {
	start, err := parseBoundary("startDate", req.StartDate, false)
	if err != nil {
		return nil, err
	}
	end, err := parseBoundary("endDate", req.EndDate, true)
	if err != nil {
		return nil, err
	}
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	now := s.timestamp()
	c := &Campaign{
		Text:            strings.TrimSpace(req.Text),
		BackgroundColor: orDefault(req.BackgroundColor, DefaultBackgroundColor),
		TextColor:       orDefault(req.TextColor, DefaultTextColor),
		Priority:        DefaultPriority,
		StartDate:       start,
		EndDate:         end,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       createdBy,
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the non-nil fields of req. The merged date window must
// still satisfy the campaign rules.
func (s *Service) Update(ctx context.Context, id string, req *UpdateCampaignRequest) (*Campaign, error) {
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		c.Text = strings.TrimSpace(*req.Text)
	}
	if req.BackgroundColor != nil {
		c.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		c.TextColor = *req.TextColor
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		if c.StartDate, err = parseBoundary("startDate", *req.StartDate, false); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if c.EndDate, err = parseBoundary("endDate", *req.EndDate, true); err != nil {
			return nil, err
		}
	}
	if err := validateWindow(c.StartDate, c.EndDate); err != nil {
		return nil, err
	}

	now := s.timestamp()
	if !now.After(c.UpdatedAt) {
		now = c.UpdatedAt.Add(time.Microsecond)
	}
	c.UpdatedAt = now

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx)
}

// GetActive returns the campaign to display right now, or nil when none is live.
func (s *Service) GetActive(ctx context.Context) (*Campaign, error) {
	enabled, err := s.repo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	return SelectActive(enabled, s.now().UTC()), nil
}

// timestamp is truncated to what postgres stores.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// parseBoundary accepts RFC 3339 or a bare date. A bare end date covers the
// whole day.
func parseBoundary(field, value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC().Truncate(time.Microsecond), nil
	}

	d, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Message: "must be an RFC 3339 timestamp or YYYY-MM-DD"}
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Microsecond), nil
	}
	return d, nil
}

// validateWindow requires the end to fall on a later calendar day (UTC)
// than the start.
func validateWindow(start, end time.Time) error {
	startDay := start.UTC().Truncate(24 * time.Hour)
	endDay := end.UTC().Truncate(24 * time.Hour)
	if !endDay.After(startDay) {
		return &ValidationError{Field: "endDate", Message: "must be at least one day after startDate"}
	}
	return nil
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}
