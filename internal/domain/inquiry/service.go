package inquiry

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new submission. It always starts uncalled.
func (s *Service) Create(ctx context.Context, req *CreateInquiryRequest) (*Inquiry, error) {
	now := s.timestamp()
	inq := &Inquiry{
		Name:        strings.TrimSpace(req.Name),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		EmailID:     strings.TrimSpace(req.EmailID),
		Subject:     strings.TrimSpace(req.Subject),
		Description: req.Description,
		Called:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateInquiryRequest) (*Inquiry, error) {
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}

	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		inq.Name = strings.TrimSpace(*req.Name)
	}
	if req.PhoneNumber != nil {
		inq.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.EmailID != nil {
		inq.EmailID = strings.TrimSpace(*req.EmailID)
	}
	if req.Subject != nil {
		inq.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Description != nil {
		inq.Description = *req.Description
	}
	if req.Called != nil {
		inq.Called = *req.Called
	}

	now := s.timestamp()
	if !now.After(inq.UpdatedAt) {
		now = inq.UpdatedAt.Add(time.Microsecond)
	}
	inq.UpdatedAt = now

	if err := s.repo.Update(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
