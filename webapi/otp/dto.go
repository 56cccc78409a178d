package otp

import (
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/google/uuid"
)

// VerifyOtpRequest represents the request body for confirming an account.
type VerifyOtpRequest struct {
	OtpID   string `json:"otp_id" validate:"required,uuid"`
	OtpCode int    `json:"otp_code" validate:"required,gte=0"`
}

// ToOtpVerify maps the request to the service input. OtpID must already be validated.
func (r *VerifyOtpRequest) ToOtpVerify() dto.OtpVerify {
	return dto.OtpVerify{
		OtpID:   uuid.MustParse(r.OtpID),
		OtpCode: r.OtpCode,
	}
}
