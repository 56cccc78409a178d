package provider

import "context"

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, body string) error
}
