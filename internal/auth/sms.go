package auth

import (
	"context"

	"go.uber.org/zap"

	"proapp/internal/i18n"
)

// CodeSender delivers one-time login codes to a mobile phone.
type CodeSender interface {
	SendLoginCode(ctx context.Context, phone, lang, code string) error
}

// LogCodeSender writes the SMS text to the log instead of a gateway.
type LogCodeSender struct {
	log *zap.Logger
}

func NewLogCodeSender(log *zap.Logger) *LogCodeSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogCodeSender{log: log.Named("sms")}
}

func (s *LogCodeSender) SendLoginCode(_ context.Context, phone, lang, code string) error {
	s.log.Info("sms queued",
		zap.String("to", phone),
		zap.String("text", i18n.Tf(i18n.Normalize(lang), "sms.login_code", code)),
	)
	return nil
}
