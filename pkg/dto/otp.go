package dto

import "github.com/google/uuid"

// OtpHandle is returned after account creation so verification can complete out-of-band.
type OtpHandle struct {
	OtpCode int       `json:"otp_code"`
	OtpID   uuid.UUID `json:"otp_id"`
}

// OtpVerify is a DTO for confirming an issued code.
type OtpVerify struct {
	OtpID   uuid.UUID
	OtpCode int
}
