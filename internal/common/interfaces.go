package common

import (
	"context"
)

// EmailDispatcher queues transactional emails. Implementations must not block
// on delivery; the mail worker sends them.
type EmailDispatcher interface {
	VerifyAccount(ctx context.Context, to, lang, token string) error
	ForgotPassword(ctx context.Context, to, lang, token string) error
	AutoLogin(ctx context.Context, data AutoLoginEmail) error
}

type AutoLoginEmail struct {
	To          string
	Lang        string
	Token       string
	UserName    string
	MobilePhone string
}
