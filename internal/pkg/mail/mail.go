package mail

import (
	"context"
	"fmt"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

// Sender delivers one plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Confirmation builds the message a citizen receives after submitting a report.
func Confirmation(name, reference string) (subject, body string) {
	subject = "Your Water Leak Report - Reference Code"
	body = fmt.Sprintf("Hi %s,\n\n"+
		"Thank you for reporting the leak.\n"+
		"Your reference number is: %s\n\n"+
		"Use this code in the app to check the status.\n\n"+
		"Regards,\nMunicipal Water Department", name, reference)
	return subject, body
}

// LogSender only logs messages. Used when no SMTP host is configured.
type LogSender struct {
	Log *logger.Logger
}

func (s LogSender) Send(ctx context.Context, to, subject, body string) error {
	l := s.Log
	if l == nil {
		l = logger.Default()
	}
	l.Info("mail disabled, not sending %q to %s", subject, to)
	return nil
}
