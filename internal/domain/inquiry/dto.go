package inquiry

// CreateInquiryRequest is the body of POST /inquiry.
type CreateInquiryRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	PhoneNumber string `json:"phoneNumber" validate:"required,notblank,max=32"`
	EmailID     string `json:"emailId" validate:"required,email"`
	Subject     string `json:"subject" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=5000"`
}

// UpdateInquiryRequest is the body of PATCH /admin/update/:id.
// Only these fields can be changed; nil fields are left as they are.
type UpdateInquiryRequest struct {
	Name        *string `json:"name" validate:"omitnil,notblank,max=200"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitnil,notblank,max=32"`
	EmailID     *string `json:"emailId" validate:"omitnil,email"`
	Subject     *string `json:"subject" validate:"omitnil,notblank,max=200"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
	Called      *bool   `json:"called"`
}

func (r *UpdateInquiryRequest) Empty() bool {
	return r.Name == nil && r.PhoneNumber == nil && r.EmailID == nil &&
		r.Subject == nil && r.Description == nil && r.Called == nil
}
