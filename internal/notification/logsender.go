package notification

import (
	"context"
	"log"
)

// LogSender writes outbound mail to the log instead of delivering it.
// Used in local development when no SendGrid key is configured.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Email) error {
	s.logger.Printf("[mail] to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
