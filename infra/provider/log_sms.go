package provider

import (
	"context"
	"log/slog"
)

// LogSMSSender writes messages to the log instead of a carrier.
// It is used when no broker is configured.
type LogSMSSender struct {
	logger *slog.Logger
}

func NewLogSMSSender(logger *slog.Logger) *LogSMSSender {
	return &LogSMSSender{logger: logger}
}

func (s *LogSMSSender) Send(_ context.Context, phoneNumber, body string) error {
	s.logger.Info("SMS dispatched", "phone_number", phoneNumber, "body", body)
	return nil
}
