package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)
