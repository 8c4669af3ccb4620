package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	JobVerifyAccount  = "email.verify_account"
	JobForgotPassword = "email.forgot_password"
	JobAutoLogin      = "email.auto_login"
)

// EmailJob is the message the API publishes and the mail worker consumes.
type EmailJob struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	To        string            `json:"to"`
	Lang      string            `json:"lang"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewEmailJob(jobType, to, lang string, data map[string]string) EmailJob {
	if data == nil {
		data = map[string]string{}
	}
	return EmailJob{
		ID:        uuid.NewString(),
		Type:      jobType,
		To:        to,
		Lang:      lang,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}

func (j EmailJob) Encode() ([]byte, error) {
	return json.Marshal(j)
}

func DecodeEmailJob(b []byte) (EmailJob, error) {
	var job EmailJob
	if err := json.Unmarshal(b, &job); err != nil {
		return EmailJob{}, fmt.Errorf("decode email job: %w", err)
	}
	if job.Type == "" || job.To == "" {
		return EmailJob{}, fmt.Errorf("decode email job: missing type or recipient")
	}
	return job, nil
}
