package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proapp/internal/queue"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name        string
		job         queue.EmailJob
		wantSubject string
		contains    []string
	}{
		{
			name: "verify in norwegian",
			job: queue.NewEmailJob(queue.JobVerifyAccount, "kari@proapp.test", "no", map[string]string{
				"url": "https://app.proapp.test/verify?token=ABC", "token": "ABC",
			}),
			wantSubject: "Aktiver kontoen din",
			contains:    []string{`href="https://app.proapp.test/verify?token=ABC"`, "Aktiver konto", "Hei kari@proapp.test,", `lang="no"`},
		},
		{
			name: "forgot in english",
			job: queue.NewEmailJob(queue.JobForgotPassword, "ola@proapp.test", "en-GB", map[string]string{
				"url": "https://app.proapp.test/reset-password?email=ola%40proapp.test&token=T", "token": "T", "email": "ola@proapp.test",
			}),
			wantSubject: "Reset your password",
			contains:    []string{"reset the password for ola@proapp.test", "email=ola%40proapp.test&amp;token=T"},
		},
		{
			name: "auto login greets by name and escapes it",
			job: queue.NewEmailJob(queue.JobAutoLogin, "x@proapp.test", "en", map[string]string{
				"url": "https://app.proapp.test/auto_login?token=K9", "user_name": "<B>OB", "mobile_phone": "123",
			}),
			wantSubject: "Your login link",
			contains:    []string{"Hello &lt;B&gt;OB,", "Sign in"},
		},
		{
			name:        "unknown language uses default",
			job:         queue.NewEmailJob(queue.JobVerifyAccount, "a@proapp.test", "xx", map[string]string{"url": "https://a"}),
			wantSubject: "Aktiver kontoen din",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := r.Render(tc.job)
			require.NoError(t, err)
			assert.Equal(t, tc.job.To, msg.To)
			assert.Equal(t, tc.wantSubject, msg.Subject)
			assert.Contains(t, msg.HTML, "<title>"+tc.wantSubject+"</title>")
			for _, s := range tc.contains {
				assert.Contains(t, msg.HTML, s)
			}
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.Render(queue.EmailJob{Type: "email.newsletter", To: "a@b.c", Data: map[string]string{"url": "x"}})
	assert.ErrorIs(t, err, ErrUnknownJob)

	_, err = r.Render(queue.EmailJob{Type: queue.JobVerifyAccount, To: "a@b.c"})
	assert.ErrorIs(t, err, ErrMissingURL)
}
