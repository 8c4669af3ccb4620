package queue

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/config"
)

// Publisher is satisfied by *Producer.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// EmailService turns email requests into jobs on the email topic.
type EmailService struct {
	publisher   Publisher
	frontendURL string
	log         *zap.Logger
}

var _ common.EmailDispatcher = (*EmailService)(nil)

func NewEmailService(publisher Publisher, cfg *config.Config, log *zap.Logger) *EmailService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailService{publisher: publisher, frontendURL: cfg.App.FrontendURL, log: log.Named("email")}
}

func (s *EmailService) VerifyAccount(ctx context.Context, to, lang, token string) error {
	return s.dispatch(ctx, NewEmailJob(JobVerifyAccount, to, lang, map[string]string{
		"url":   s.link("/verify", url.Values{"token": {token}}),
		"token": token,
	}))
}

func (s *EmailService) ForgotPassword(ctx context.Context, to, lang, token string) error {
	return s.dispatch(ctx, NewEmailJob(JobForgotPassword, to, lang, map[string]string{
		"url":   s.link("/reset-password", url.Values{"token": {token}, "email": {to}}),
		"token": token,
		"email": to,
	}))
}

func (s *EmailService) AutoLogin(ctx context.Context, data common.AutoLoginEmail) error {
	return s.dispatch(ctx, NewEmailJob(JobAutoLogin, data.To, data.Lang, map[string]string{
		"url":          s.link("/auto_login", url.Values{"token": {data.Token}}),
		"user_name":    data.UserName,
		"mobile_phone": data.MobilePhone,
	}))
}

func (s *EmailService) link(path string, q url.Values) string {
	return s.frontendURL + path + "?" + q.Encode()
}

func (s *EmailService) dispatch(ctx context.Context, job EmailJob) error {
	value, err := job.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", job.Type, err)
	}
	if err := s.publisher.Publish(ctx, []byte(job.Type), value); err != nil {
		s.log.Error("publish failed", zap.String("type", job.Type), zap.String("to", job.To), zap.Error(err))
		return fmt.Errorf("publish %s: %w", job.Type, err)
	}
	s.log.Info("email queued", zap.String("id", job.ID), zap.String("type", job.Type))
	return nil
}
